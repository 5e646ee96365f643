// Package logger provides opt-in diagnostic logging.
// Messages are discarded unless verbose mode is enabled, e.g. by the
// --verbose flag of the host CLI, and are written to stderr by default.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput sets the output writer. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// logf writes one line while holding mu, so writers need not be safe
// for concurrent use.
func logf(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a debug message.
func Debug(format string, args ...any) {
	logf("[DEBUG] ", format, args...)
}

// Info prints an informational message.
func Info(format string, args ...any) {
	logf("[INFO] ", format, args...)
}

// Warn prints a warning.
func Warn(format string, args ...any) {
	logf("[WARN] ", format, args...)
}

// Section prints a section header.
func Section(name string) {
	logf("\n=== ", "%s ===", name)
}
