package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/yaseigamedb/backend/internal/config"
)

// NewLogger builds the process-wide slog logger from LogConfig and installs
// it as the slog default. The json format is meant for deployments; text is
// for local runs and adds source locations. Unknown levels fall back to
// info, unknown formats to json. Output goes to stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var h slog.Handler
	if text {
		h = slog.NewTextHandler(os.Stderr, opts)
	} else {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
