// Package logging provides a leveled logger for the codec and its CLI.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents log severity levels
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// ParseLevel maps a level name to a Level. Unknown names report false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelInfo, false
}

// Logger writes messages at or above its level
type Logger struct {
	level  Level
	mu     sync.RWMutex
	logger *log.Logger
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// New returns a logger writing to w
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, logger: log.New(w, "", log.LstdFlags)}
}

// Default returns the process-wide logger (stderr, info level)
func Default() *Logger {
	once.Do(func() {
		defaultLogger = New(os.Stderr, LevelInfo)
	})
	return defaultLogger
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetLevelFromString sets the level by name, falling back to info
func (l *Logger) SetLevelFromString(levelStr string) {
	level, _ := ParseLevel(levelStr)
	l.SetLevel(level)
}

func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) GetLevelString() string {
	return levelNames[l.GetLevel()]
}

// SetOutput redirects the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

func (l *Logger) log(level Level, format string, args ...any) {
	if level < l.GetLevel() {
		return
	}
	l.logger.Printf("[%s] %s", levelNames[level], fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any) { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any) { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// Package-level convenience functions

func SetLevel(level Level) { Default().SetLevel(level) }
func SetLevelFromString(levelStr string) { Default().SetLevelFromString(levelStr) }
func SetOutput(w io.Writer) { Default().SetOutput(w) }

func Debug(format string, args ...any) { Default().Debug(format, args...) }
func Info(format string, args ...any) { Default().Info(format, args...) }
func Warn(format string, args ...any) { Default().Warn(format, args...) }
func Error(format string, args ...any) { Default().Error(format, args...) }
