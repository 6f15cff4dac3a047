// Package logger provides leveled diagnostic logging for web-distributor.
//
// Log lines go to stderr so they never mix with the run summary printed by
// the output package. Each line has the form
//
//	[LEVEL] YYYY-MM-DD HH:MM:SS message key=value key=value
//
// Key/value pairs are passed as alternating arguments and printed in the
// order given:
//
//	logger.Info("rotated", "root", "/etc/web-distributor", "archive", archive)
//
// A run logs its steps at Info and the reason it aborted at Error. The level
// tag is colored when writing to a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level represents a logging severity level.
type Level int

// Log levels from least to most severe.
const (
	LevelInfo Level = iota
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

var levelColors = map[Level]*color.Color{
	LevelInfo:  color.New(color.FgCyan),
	LevelError: color.New(color.FgRed, color.Bold),
}

// Logger handles leveled logging with serialized output.
type Logger struct {
	mu      sync.Mutex
	level   Level
	output  io.Writer
	colored bool
}

var std = &Logger{
	level:   LevelInfo,
	output:  os.Stderr,
	colored: !color.NoColor,
}

// SetLevel sets the minimum log level for the global logger.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
}

// SetOutput redirects the global logger. A nil writer restores stderr.
// Colors are only used for stderr.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if w == nil {
		std.output = os.Stderr
		std.colored = !color.NoColor
		return
	}
	std.output = w
	std.colored = false
}

func (l *Logger) log(level Level, msg string, kv []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	tag := "[" + level.String() + "]"
	if l.colored {
		tag = levelColors[level].Sprint(tag)
	}

	var b strings.Builder
	b.WriteString(tag)
	b.WriteByte(' ')
	b.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	b.WriteByte(' ')
	b.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		var val any = "(missing)"
		if i+1 < len(kv) {
			val = kv[i+1]
		}
		fmt.Fprintf(&b, " %v=%v", kv[i], val)
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.output, b.String())
}

// Info logs an informational message.
func Info(msg string, kv ...any) {
	std.log(LevelInfo, msg, kv)
}

// Error logs an error message.
func Error(msg string, kv ...any) {
	std.log(LevelError, msg, kv)
}
