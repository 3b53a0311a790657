package logger

import (
	"fmt"
	"time"
)

// ANSI color codes. Output degrades to plain escape-prefixed text on terminals
// that don't support them, which is acceptable for a dev tool.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	cyan   = "\033[36m"
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	gray   = "\033[90m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

func line(color, level, tag, msg string) {
	fmt.Printf("%s%s%s %s%-7s%s %s[%s]%s %s\n",
		gray, timestamp(), reset, color, level, reset, bold, tag, reset, msg)
}

// Info logs an informational message under a component tag.
func Info(tag, msg string) {
	line(cyan, "INFO", tag, msg)
}

// Success logs a success message under a component tag.
func Success(tag, msg string) {
	line(green, "OK", tag, msg)
}

// Warn logs a warning message under a component tag.
func Warn(tag, msg string) {
	line(yellow, "WARN", tag, msg)
}

// Error logs an error message under a component tag.
func Error(tag, msg string) {
	line(red, "ERROR", tag, msg)
}

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Printf("\n%s%s  PriceScan %s%s\n", bold, cyan, version, reset)
	fmt.Printf("%s  marketplace price aggregation service%s\n\n", gray, reset)
}

// Section prints a visual divider with a title.
func Section(title string) {
	fmt.Printf("\n%s── %s %s\n", bold, title, reset)
}

// Stats prints a key/value pair aligned for readability.
func Stats(key string, value interface{}) {
	fmt.Printf("  %s%-24s%s %v\n", gray, key, reset, value)
}

// Server logs the listen address once the HTTP server is up.
func Server(addr string) {
	fmt.Printf("%s%s  Listening on http://%s%s\n\n", bold, green, addr, reset)
}
