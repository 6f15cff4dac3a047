// Package output prints user-facing progress and summary lines.
//
// Diagnostics for debugging go through the logger package on stderr; this
// package is for what an operator reads after a run. Errors are written to
// stderr, everything else to stdout.
package output

import (
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
	pathColor    = color.New(color.Faint)
)

var (
	mu     sync.Mutex
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetWriters redirects output. Nil restores the process streams.
func SetWriters(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

func emit(toErr bool, c *color.Color, prefix, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	w := stdout
	if toErr {
		w = stderr
	}
	_, _ = c.Fprintf(w, prefix+format+"\n", args...)
}

// Success prints a success message
func Success(format string, args ...interface{}) {
	emit(false, successColor, "✓ ", format, args...)
}

// Error prints an error message to stderr
func Error(format string, args ...interface{}) {
	emit(true, errorColor, "✗ ", format, args...)
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	emit(false, infoColor, "→ ", format, args...)
}

// Path prints an indented, dimmed path line
func Path(path string) {
	emit(false, pathColor, "    ", "%s", path)
}
