// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
// Every logger New returns passes records through a masq filter, so header
// credentials, store URIs with passwords and bearer tokens never reach the
// output even when a call site logs them by accident.
//
// Services log failures with the operation, the character ID when there is
// one, and the error chain:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "update character failed",
//	    slog.String("operation", "Update"),
//	    slog.String("id", id.String()),
//	    slog.Any("error", err),
//	)
//
// Behind the request middleware the context logger already carries
// request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New returns a logger writing to w at the named level ("debug", "info",
// "warn" or "error", case-insensitive; anything else means info). Format
// "text" selects the text handler and everything else JSON. Debug loggers
// also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Component returns a child logger tagged with the given component name,
// for adapters that log outside a request (storage breakers, CLI commands).
func Component(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("component", name))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
