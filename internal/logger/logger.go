package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the logging level
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of LogLevel
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel, defaulting to INFO
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Logger writes levelled messages prefixed with "[LEVEL] ".
// Lookups may run from several goroutines, so level and sink are guarded.
type Logger struct {
	mu     sync.RWMutex
	level  LogLevel
	logger *log.Logger
}

// New creates a logger writing to w at the given level
func New(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(w, "", 0),
	}
}

var globalLogger = New(os.Stderr, INFO)

// SetLevel sets the global logging level
func SetLevel(level LogLevel) {
	globalLogger.SetLevel(level)
}

// SetLevelFromString sets the global logging level from string
func SetLevelFromString(level string) {
	SetLevel(ParseLogLevel(level))
}

// GetLevel returns the current logging level
func GetLevel() LogLevel {
	return globalLogger.Level()
}

// SetOutput redirects the global logger and returns the previous writer
func SetOutput(w io.Writer) io.Writer {
	return globalLogger.SetOutput(w)
}

// SetLevel changes the minimum level l emits
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Level returns the minimum level l emits
func (l *Logger) Level() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetOutput swaps the destination writer and returns the old one
func (l *Logger) SetOutput(w io.Writer) io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	prev := l.logger.Writer()
	l.logger = log.New(w, "", 0)
	return prev
}

func (l *Logger) shouldLog(level LogLevel) bool {
	return level >= l.Level()
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	message := fmt.Sprintf(format, args...)
	l.mu.RLock()
	l.logger.Printf("[%s] %s", level.String(), message)
	l.mu.RUnlock()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(DEBUG, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(INFO, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(WARN, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(ERROR, format, args...)
}

func Debug(format string, args ...interface{}) {
	globalLogger.Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	globalLogger.Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	globalLogger.Warn(format, args...)
}

func Error(format string, args ...interface{}) {
	globalLogger.Error(format, args...)
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return IsLevelEnabled(DEBUG)
}

// IsLevelEnabled returns true if the given level is enabled
func IsLevelEnabled(level LogLevel) bool {
	return globalLogger.shouldLog(level)
}
