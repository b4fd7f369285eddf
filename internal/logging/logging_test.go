package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"invalid", LevelInfo}, // defaults to info
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(&bytes.Buffer{}, LevelError)
			l.SetLevelFromString(tt.input)
			assert.Equal(t, tt.expected, l.GetLevel())
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel(" Warn ")
	assert.True(t, ok)
	assert.Equal(t, LevelWarn, level)

	_, ok = ParseLevel("verbose")
	assert.False(t, ok)
}

func TestLoggingOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)

	l.Debug("test debug %d", 1)
	assert.Contains(t, buf.String(), "[DEBUG] test debug 1")

	// Debug is suppressed at Info level
	l.SetLevel(LevelInfo)
	buf.Reset()
	l.Debug("should not appear")
	assert.Zero(t, buf.Len())

	l.Info("test info")
	assert.Contains(t, buf.String(), "[INFO] test info")

	buf.Reset()
	l.Warn("test warn")
	assert.Contains(t, buf.String(), "[WARN]")

	buf.Reset()
	l.Error("test error")
	assert.Contains(t, buf.String(), "[ERROR]")
	assert.Equal(t, "INFO", l.GetLevelString())
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelWarn)
	t.Cleanup(func() {
		SetLevel(LevelInfo)
		SetOutput(os.Stderr)
	})

	Info("hidden")
	Warn("shown %s", "here")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[WARN] shown here")
	assert.Equal(t, "WARN", Default().GetLevelString())
}
