package telemetry

import (
	"log/slog"
	"os"
)

// InitSlog installs the process-wide structured logger. Debug mode lowers
// the level and keeps the human-readable text handler; production uses
// json output for log shippers.
func InitSlog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if debug {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
