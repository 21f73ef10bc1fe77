// Package logger builds slog loggers from configuration.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/epitools/covidtrends/pkg/config"
)

// New creates a slog.Logger based on the provided configuration.
// It respects the logging level, format and destination from the config.
// Invalid values default to Info level, text format and stderr.
func New(cfg *config.LogConfig) *slog.Logger {
	var writer io.Writer
	switch strings.ToLower(cfg.Destination) {
	case "stdout":
		writer = os.Stdout
	default:
		writer = os.Stderr
	}
	return NewWithWriter(cfg, writer)
}

// NewWithWriter creates a slog.Logger writing to the given writer. Split
// out so tests can capture output.
func NewWithWriter(cfg *config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a string log level to slog.Level.
// Valid levels: "debug", "info", "warn", "error" (case-insensitive).
// Invalid levels default to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
