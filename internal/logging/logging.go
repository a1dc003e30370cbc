// Package logging centralizes structured logger construction and common
// logging helpers.
package logging

import (
	"io"
	"log/slog"
)

// NewStructuredLogger creates a text slog.Logger writing to w at the given
// minimum level.
func NewStructuredLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LogError logs an error with a consistent "error" attribute plus any extra
// attributes the call site wants to carry.
func LogError(logger *slog.Logger, msg string, err error, args ...any) {
	attrs := append([]any{slog.String("error", err.Error())}, args...)
	logger.Error(msg, attrs...)
}
