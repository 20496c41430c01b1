package ctxlog

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger creates a logger writing to w; unknown levels fall back to warn.
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: slogLevel}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}
