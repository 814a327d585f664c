// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a --log-level value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q (want debug | info | warn | error)", s)
}

// NewLogger builds an isolated logger writing to dst. format is "text" or
// "json"; quiet raises the level to at least warn.
func NewLogger(dst io.Writer, level slog.Level, format string, quiet bool) *slog.Logger {
	if quiet && level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(dst, opts)
	} else {
		h = slog.NewTextHandler(dst, opts)
	}
	return slog.New(h)
}

// Warnings logs each message at warn level.
func Warnings(log *slog.Logger, msgs []string) {
	for _, m := range msgs {
		log.Warn(m)
	}
}
