package logging

import (
	"context"
	"log/slog"
)

// Attribute constructors, re-exported so callers import one package.
var (
	String   = slog.String
	Int      = slog.Int
	Int64    = slog.Int64
	Bool     = slog.Bool
	Duration = slog.Duration
)

// Error wraps err under the "error" key.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// ErrorWithContext logs an error record that always carries event_type and
// error_hint, filling in defaults the caller left out.
func ErrorWithContext(logger *slog.Logger, msg, eventType string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	var hasEvent, hasHint bool
	for _, attr := range attrs {
		hasEvent = hasEvent || attr.Key == FieldEventType
		hasHint = hasHint || attr.Key == FieldErrorHint
	}
	if !hasEvent {
		attrs = append(attrs, slog.String(FieldEventType, eventType))
	}
	if !hasHint {
		attrs = append(attrs, slog.String(FieldErrorHint, "check logs for details"))
	}
	logger.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}
