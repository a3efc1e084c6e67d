// Package logging provides structured logging for the go-waverider
// simulation. It wraps Go's standard slog package with JSON output, an
// environment-controlled level, and per-component child loggers.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with simulation-specific conveniences.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with JSON output on stdout. The log level is
// controlled by the WAVERIDER_LOG_LEVEL environment variable; valid levels
// are DEBUG, INFO, WARN, ERROR, defaulting to INFO.
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout)
}

// NewLoggerTo creates a Logger writing JSON to the given writer.
func NewLoggerTo(w io.Writer) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: getLogLevelFromEnv(),
	})
	return &Logger{slog.New(handler)}
}

// WithComponent returns a child logger tagged with a component name, e.g.
// "engine" or "render.terminal".
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.Logger.With("component", name)}
}

// ErrorErr logs an error-level message with the error attached as a field.
func (l *Logger) ErrorErr(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.Error(msg, args...)
}

// getLogLevelFromEnv determines the log level from the environment.
func getLogLevelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv("WAVERIDER_LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WrapError wraps an error with additional context, preserving the
// original error for errors.Is/As.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
