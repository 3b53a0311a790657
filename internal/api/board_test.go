package api

import "testing"

func TestResultBoardLatestQueryWins(t *testing.T) {
	var b ResultBoard

	first := b.Begin()
	second := b.Begin()

	resB := &SearchResponse{Query: "newer"}
	if !b.Publish(second, resB) {
		t.Fatal("newest search should publish")
	}

	// The older search finishing late must not overwrite the newer result.
	resA := &SearchResponse{Query: "older"}
	if b.Publish(first, resA) {
		t.Error("stale search should be rejected")
	}

	got, ok := b.Latest()
	if !ok || got.Query != "newer" {
		t.Errorf("latest = %+v, want the newer result", got)
	}
}

func TestResultBoardEmpty(t *testing.T) {
	var b ResultBoard
	if _, ok := b.Latest(); ok {
		t.Error("empty board should report no result")
	}
}

func TestResultBoardSequencesIncrease(t *testing.T) {
	var b ResultBoard
	a := b.Begin()
	c := b.Begin()
	if c <= a {
		t.Errorf("sequence not increasing: %d then %d", a, c)
	}
}
