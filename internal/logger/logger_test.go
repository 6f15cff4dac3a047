package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

// capture redirects the global logger into a buffer for the test's lifetime.
func capture(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetOutput(nil)
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelInfo, "INFO"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if tt.level.String() != tt.expected {
				t.Errorf("Level(%d).String() = %v, want %v", tt.level, tt.level.String(), tt.expected)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, LevelInfo)

	tests := []struct {
		name       string
		level      Level
		logFunc    func(string, ...any)
		shouldShow bool
	}{
		{"info at info level", LevelInfo, Info, true},
		{"error at info level", LevelInfo, Error, true},
		{"info at error level", LevelError, Info, false},
		{"error at error level", LevelError, Error, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			SetLevel(tt.level)

			tt.logFunc("test message")

			if got := buf.Len() > 0; got != tt.shouldShow {
				t.Errorf("got output=%v, want output=%v", got, tt.shouldShow)
			}
		})
	}
}

func TestKeyValueFormatting(t *testing.T) {
	buf := capture(t, LevelInfo)

	Info("rotated", "root", "/etc/web-distributor", "entries", 2)
	line := strings.TrimSpace(buf.String())

	if !strings.HasPrefix(line, "[INFO] ") {
		t.Errorf("missing [INFO] prefix: %s", line)
	}
	if !strings.HasSuffix(line, "rotated root=/etc/web-distributor entries=2") {
		t.Errorf("pairs not rendered in order: %s", line)
	}
}

func TestOddKeyValue(t *testing.T) {
	buf := capture(t, LevelInfo)

	Info("dangling", "key")
	if !strings.Contains(buf.String(), "key=(missing)") {
		t.Errorf("dangling key not marked: %s", buf.String())
	}
}

func TestNoTrailingSpace(t *testing.T) {
	buf := capture(t, LevelInfo)

	Info("no fields")
	line := strings.TrimRight(buf.String(), "\n")
	if strings.HasSuffix(line, " ") {
		t.Errorf("should not have trailing space: %q", line)
	}
}

func TestConcurrentLogging(t *testing.T) {
	buf := capture(t, LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Error("goroutine", "n", n)
			Info("info", "n", n)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 100 {
		t.Errorf("expected 100 log lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "[ERROR]") && !strings.HasPrefix(line, "[INFO]") {
			t.Errorf("line %d may be corrupted: %s", i, line)
		}
	}
}
