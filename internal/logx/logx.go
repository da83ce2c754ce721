// Package logx configures the process-wide slog logger.
package logx

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New builds a tinted slog logger writing to stderr and installs it as the
// default. Level comes from LOG_LEVEL (debug|info|warn|error), default info.
func New() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(log)
	return log
}

// Err wraps an error as a tint-aware attribute.
var Err = tint.Err
