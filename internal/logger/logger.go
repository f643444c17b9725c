// Package logger wraps charm/log for structured CLI diagnostics.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log with engram-specific helpers.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w.
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level.
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that drops all output.
func Discard() *Logger {
	return New(io.Discard)
}

// ExportWritten logs a completed export.
func (l *Logger) ExportWritten(path, format string, count int) {
	l.Info("export written",
		"path", path,
		"format", format,
		"memories", count)
}

// HealthAttempt logs a health-check retry.
func (l *Logger) HealthAttempt(attempt int, err error) {
	l.Debug("health check",
		"attempt", attempt,
		"error", err)
}

// ServerError logs a failed server call.
func (l *Logger) ServerError(operation string, err error) {
	l.Error("server error",
		"operation", operation,
		"error", err)
}
