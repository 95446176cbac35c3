// Package logger builds the slog logger shared by the CLI and the client.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New returns a logger writing to w at the given level ("debug", "info",
// "warn", "error") and format ("text" or "json").
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := toSlogLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	handler, err := toSlogHandler(format, w, opts)
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}
	return slog.New(handler), nil
}

func toSlogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported logger level: %s", level)
	}
}

func toSlogHandler(format string, out io.Writer, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return slog.NewTextHandler(out, opts), nil
	case "json":
		return slog.NewJSONHandler(out, opts), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
