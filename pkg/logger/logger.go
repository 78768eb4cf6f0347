// Package logger provides a small leveled logging interface and implementation.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Logger defines the logging interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
}

// Level represents logging levels
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

type logger struct {
	level   Level
	loggers map[Level]*log.Logger
	mu      sync.RWMutex
}

// New creates a logger whose level comes from LOG_LEVEL.
// Debug and info go to stdout, warnings and errors to stderr.
func New() Logger {
	return NewWithLevel(os.Getenv("LOG_LEVEL"))
}

// NewWithLevel creates a logger writing to the standard streams at the given level.
func NewWithLevel(level string) Logger {
	return &logger{
		level: ParseLevel(level),
		loggers: map[Level]*log.Logger{
			LevelDebug: log.New(os.Stdout, "[DEBUG] ", log.LstdFlags|log.Lshortfile),
			LevelInfo:  log.New(os.Stdout, "[INFO] ", log.LstdFlags),
			LevelWarn:  log.New(os.Stderr, "[WARN] ", log.LstdFlags),
			LevelError: log.New(os.Stderr, "[ERROR] ", log.LstdFlags|log.Lshortfile),
		},
	}
}

// NewWithOutput creates a logger sending every level to out.
func NewWithOutput(level string, out io.Writer) Logger {
	return &logger{
		level: ParseLevel(level),
		loggers: map[Level]*log.Logger{
			LevelDebug: log.New(out, "[DEBUG] ", 0),
			LevelInfo:  log.New(out, "[INFO] ", 0),
			LevelWarn:  log.New(out, "[WARN] ", 0),
			LevelError: log.New(out, "[ERROR] ", 0),
		},
	}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return NewWithOutput("error", io.Discard)
}

// ParseLevel converts a level name to a Level, defaulting to info.
func ParseLevel(levelStr string) Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// ValidLevel reports whether levelStr names a known level.
func ValidLevel(levelStr string) bool {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

func (l *logger) shouldLog(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.level
}

func (l *logger) output(level Level, msg string) {
	l.mu.RLock()
	lg := l.loggers[level]
	l.mu.RUnlock()

	lg.Output(4, msg)
}

func (l *logger) print(level Level, v ...interface{}) {
	if !l.shouldLog(level) {
		return
	}
	l.output(level, fmt.Sprint(v...))
}

func (l *logger) printf(level Level, format string, v ...interface{}) {
	if !l.shouldLog(level) {
		return
	}
	l.output(level, fmt.Sprintf(format, v...))
}

func (l *logger) Debug(v ...interface{})                 { l.print(LevelDebug, v...) }
func (l *logger) Debugf(format string, v ...interface{}) { l.printf(LevelDebug, format, v...) }
func (l *logger) Info(v ...interface{})                  { l.print(LevelInfo, v...) }
func (l *logger) Infof(format string, v ...interface{})  { l.printf(LevelInfo, format, v...) }
func (l *logger) Warn(v ...interface{})                  { l.print(LevelWarn, v...) }
func (l *logger) Warnf(format string, v ...interface{})  { l.printf(LevelWarn, format, v...) }
func (l *logger) Error(v ...interface{})                 { l.print(LevelError, v...) }
func (l *logger) Errorf(format string, v ...interface{}) { l.printf(LevelError, format, v...) }

// Fatal logs an error message and exits
func (l *logger) Fatal(v ...interface{}) {
	l.print(LevelError, v...)
	os.Exit(1)
}

// Fatalf logs a formatted error message and exits
func (l *logger) Fatalf(format string, v ...interface{}) {
	l.printf(LevelError, format, v...)
	os.Exit(1)
}
