// Package simlog is the kernel's process-wide logging sink. No third-party
// logging library appears anywhere in the retrieved corpus — every repo
// logs via fmt/log — so this stays on the standard library rather than
// reaching for one out of habit.
package simlog

import (
	"log"
	"os"
)

var std = log.New(os.Stderr, "", log.LstdFlags)

// SetOutput redirects every subsequent Info/Warn/Error call, e.g. to a
// test buffer or a file the host program owns.
func SetOutput(w *log.Logger) {
	std = w
}

// Info logs a routine informational message.
func Info(format string, args ...any) {
	std.Printf("[info] "+format, args...)
}

// Warn logs a recoverable anomaly — a degenerate geometry skip, a
// fallback-to-default config value.
func Warn(format string, args ...any) {
	std.Printf("[warn] "+format, args...)
}

// Error logs a failure the caller should surface, e.g. a failed export
// write. The core itself never terminates the process over this.
func Error(format string, args ...any) {
	std.Printf("[error] "+format, args...)
}
