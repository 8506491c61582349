// Package logger provides verbose diagnostic logging for the Titan CLI.
// When verbose mode is enabled via the --verbose flag, messages are printed
// to stderr so users can follow the aggregation pipeline call by call.
// The user-facing scan log is the session's LogEvent stream, not this package.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
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
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// printf writes one prefixed line when verbose mode is on.
func printf(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { printf("[DEBUG] ", format, args...) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { printf("[INFO] ", format, args...) }

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) { printf("[WARN] ", format, args...) }

// Error prints an error message if verbose mode is enabled.
func Error(format string, args ...any) { printf("[ERROR] ", format, args...) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) { printf("\n=== ", "%s ===", name) }
