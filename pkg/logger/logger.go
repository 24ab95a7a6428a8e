package logger

import (
	"log/slog"
	"os"
)

// New returns a slog.Logger writing to stdout. LOG_FORMAT=json switches to
// the JSON handler for log collectors; anything else means human-readable text.
func New(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
