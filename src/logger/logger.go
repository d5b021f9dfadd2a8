package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// -----------------------------------------------------------------------------

// Level ordering used by the minimum-level gate.
const (
	levelDebug = iota
	levelInfo
	levelWarning
	levelError
	levelCritical
)

// LevelProvider exposes the configured minimum log level.
type LevelProvider interface {
	MinLogLevel() string
}

// -----------------------------------------------------------------------------

// Logger provides structured logging functionality
type Logger struct {
	name     string
	logger   *log.Logger
	minLevel int
}

// -----------------------------------------------------------------------------

// NewLogger creates a new Logger instance
func NewLogger(config interface{}, name string) *Logger {
	l := &Logger{
		name:     name,
		logger:   log.New(os.Stdout, "", log.LstdFlags),
		minLevel: levelInfo,
	}
	if lp, ok := config.(LevelProvider); ok {
		l.minLevel = parseLevel(lp.MinLogLevel())
	}
	return l
}

// -----------------------------------------------------------------------------

func parseLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return levelDebug
	case "warning", "warn":
		return levelWarning
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// -----------------------------------------------------------------------------

// Debug logs diagnostic messages
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.minLevel > levelDebug {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] DEBUG: %s", l.name, msg)
}

// -----------------------------------------------------------------------------

// Info logs informational messages
func (l *Logger) Info(format string, args ...interface{}) {
	if l.minLevel > levelInfo {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] INFO: %s", l.name, msg)
}

// -----------------------------------------------------------------------------

// Warning logs recoverable problems
func (l *Logger) Warning(format string, args ...interface{}) {
	if l.minLevel > levelWarning {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] WARNING: %s", l.name, msg)
}

// -----------------------------------------------------------------------------

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	if l.minLevel > levelError {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] ERROR: %s", l.name, msg)
}

// -----------------------------------------------------------------------------

// Critical logs critical errors and exits the application
func (l *Logger) Critical(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] CRITICAL: %s", l.name, msg)
	os.Exit(1)
}
