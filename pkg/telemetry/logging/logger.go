package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"lexora-hq/themis/pkg/config"
)

// New creates a structured logger from the logging configuration, writing to
// w. If w is nil, os.Stderr is used.
func New(cfg *config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	case "json", "":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q (must be json or text)", cfg.Format)
	}

	return slog.New(handler), nil
}

// Install creates a logger from the configuration and installs it as the
// process-wide default, so components that log via slog.Default pick it up.
func Install(cfg *config.LoggingConfig) (*slog.Logger, error) {
	logger, err := New(cfg, nil)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (must be debug, info, warn, or error)", level)
	}
}

// SetLevel re-installs the default logger at a new level, keeping the
// existing format. Used by the configuration watcher to apply log level
// changes at runtime.
func SetLevel(cfg *config.LoggingConfig, level string) error {
	if _, err := ParseLevel(level); err != nil {
		return err
	}

	updated := *cfg
	updated.Level = level
	_, err := Install(&updated)
	return err
}
