package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a JSON slog.Logger writing to stdout. The minimum level is
// taken from the LOG_LEVEL environment variable (debug, info, warn, error)
// and defaults to info.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelFromEnv(os.Getenv("LOG_LEVEL"))})
	return slog.New(handler)
}

func levelFromEnv(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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
