package cmd

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger creates a text slog logger writing to w at the provided level. If
// the level string is invalid it defaults to warn.
//
// stdout is reserved to the report, so w is usually os.Stderr.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl := new(slog.LevelVar)
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl.Set(slog.LevelWarn)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
