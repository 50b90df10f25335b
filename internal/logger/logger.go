// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"

	"github.com/fourforfour/eldanialight/internal/config"
)

// Setup configures the global slog logger based on environment.
// Logs go to w, which is stderr for the CLI so they never mix with output.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// Discard returns a logger that drops everything. Used by the explorer
// while the terminal is in full-screen mode.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
