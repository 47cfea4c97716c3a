package cli

import (
	"io"
	"log/slog"
	"strings"
)

// parseLevel maps a validated level name onto slog; unknown names fall back to Info.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the program logger: text records on w at the given level.
// Results go to stdout; logs go to w (stderr in the programs).
func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}
