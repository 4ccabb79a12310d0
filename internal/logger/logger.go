// Package logger provides debug logging for the answer pipeline.
// When debug mode is enabled via the --debug flag, messages are printed
// to stderr so they never mix with answer output on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	debug  bool
	output io.Writer = os.Stderr
)

// SetDebug enables or disables debug logging.
func SetDebug(d bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = d
}

// SetOutput sets the output writer for logs. Defaults to os.Stderr.
// Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if debug mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if debug {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Warn prints a warning message. Warnings are always shown: they signal
// degraded behavior such as a generation back-end falling over.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
}
