package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds the process logger and installs it as the slog default.
func NewLogger(l Logging, w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo

	switch strings.ToLower(l.Level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if strings.ToLower(l.Format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}
