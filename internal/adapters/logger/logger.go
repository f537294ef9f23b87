// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/kiln/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	w      io.Writer
	mu     sync.RWMutex
}

// New creates a new Logger instance writing to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing human-readable lines to w.
func NewWithWriter(w io.Writer) *Logger {
	l := &Logger{level: new(slog.LevelVar), w: w}
	l.level.Set(slog.LevelInfo)
	l.logger = slog.New(l.handler(w))
	return l
}

func (l *Logger) handler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.level})
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w = w
	l.logger = slog.New(l.handler(w))
}

// SetLevel changes the minimum level that is emitted.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// With returns a Logger that adds attrs to every record.
func (l *Logger) With(attrs ...any) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return &Logger{
		logger: l.logger.With(attrs...),
		level:  l.level,
		w:      l.w,
	}
}

// Info logs an informational message.
func (l *Logger) Info(msg string, attrs ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, attrs...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, attrs ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, attrs...)
}

// Error logs an error message.
func (l *Logger) Error(err error, attrs ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", append([]any{"error", err}, attrs...)...)
}
