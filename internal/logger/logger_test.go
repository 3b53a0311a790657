package logger

import (
	"bytes"
	"os"
	"testing"
)

// captureStdout redirects stdout for the duration of fn and returns what was written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestLevels_IncludeTagAndMessage(t *testing.T) {
	out := captureStdout(t, func() {
		Info("EBAY", "fetching listings")
		Success("DB", "opened")
		Warn("AUTH", "no credentials")
		Error("API", "upstream failed")
	})
	for _, want := range []string{"EBAY", "fetching listings", "DB", "AUTH", "API", "upstream failed"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestBanner_EmptyVersionFallsBackToDev(t *testing.T) {
	out := captureStdout(t, func() {
		Banner("")
	})
	if !bytes.Contains([]byte(out), []byte("dev")) {
		t.Errorf("Banner(\"\") output missing dev fallback: %q", out)
	}
}

func TestSectionStatsServer_NoPanic(t *testing.T) {
	captureStdout(t, func() {
		Section("Startup")
		Stats("listings cached", 42)
		Server("127.0.0.1:8080")
	})
}
