// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
)

// exitCodeFatal is the process exit status after an unrecoverable internal error.
const exitCodeFatal = 2

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	exit   func(code int)
	mu     sync.RWMutex
}

// New creates a new Logger writing to stderr at info level.
func New() *Logger {
	level := new(slog.LevelVar)
	return &Logger{
		logger: slog.New(newHandler(os.Stderr, level)),
		level:  level,
		exit:   os.Exit,
	}
}

// newHandler uses a text handler for human-readable output.
func newHandler(w io.Writer, level *slog.LevelVar) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(newHandler(w, l.level))
}

// SetLevel changes the minimum level that gets logged.
func (l *Logger) SetLevel(level domain.LogLevel) {
	l.level.Set(level.Slog())
}

// SetExit replaces the function Fatal terminates the process with.
func (l *Logger) SetExit(exit func(code int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.exit = exit
}

// Debug logs a diagnostic message with key/value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}

// Fatal logs an internal error and terminates the process.
func (l *Logger) Fatal(err error) {
	l.mu.RLock()
	l.logger.Error("internal error", "error", err)
	exit := l.exit
	l.mu.RUnlock()

	exit(exitCodeFatal)
}
