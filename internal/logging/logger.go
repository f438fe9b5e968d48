// Package logging builds the slog loggers used by the generator.
package logging

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// New creates a logger writing to w at the given level ("debug", "info",
// "warn", "error") in the given format ("json" or text). Unknown levels fall
// back to info. It does not set the global logger.
func New(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level

	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// WithRunID tags every record of logger with a fresh run id, so that log
// lines of one generator run can be correlated.
func WithRunID(logger *slog.Logger) *slog.Logger {
	return logger.With("run_id", uuid.NewString())
}
