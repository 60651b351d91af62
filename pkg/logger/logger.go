package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init so handlers never see a nil logger in tests
var Log = newJSONLogger(slog.LevelInfo)

// Init switches to debug output outside production
func Init(production bool) {
	level := slog.LevelDebug
	if production {
		level = slog.LevelInfo
	}
	Log = newJSONLogger(level)
}

func newJSONLogger(level slog.Level) *slog.Logger {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
