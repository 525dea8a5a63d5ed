// Package logger provides verbose logging for the Huangli server.
// When verbose mode is enabled via the --verbose flag, messages are
// printed to stderr. Stdout is never written: in stdio mode it carries
// the MCP JSON-RPC stream.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
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

// Entry is a logger bound to a set of key=value fields.
type Entry struct {
	fields string
}

// With returns an entry that appends the given key/value pairs to every line.
// A trailing key without a value is dropped.
func With(kv ...any) Entry {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	return Entry{fields: b.String()}
}

// Debug prints a debug message with the entry's fields.
func (e Entry) Debug(format string, args ...any) { write("DEBUG", e.fields, format, args) }

// Info prints an informational message with the entry's fields.
func (e Entry) Info(format string, args ...any) { write("INFO", e.fields, format, args) }

// Warn prints a warning with the entry's fields.
func (e Entry) Warn(format string, args ...any) { write("WARN", e.fields, format, args) }

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { write("DEBUG", "", format, args) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { write("INFO", "", format, args) }

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) { write("WARN", "", format, args) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func write(level, fields, format string, args []any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "[%s] %s%s\n", level, fmt.Sprintf(format, args...), fields)
}
