package internal

import (
	"io"
	"log/slog"
	"time"
)

// NewLogger builds the storefront logger: JSON in prod for log ingestion,
// text everywhere else. The level string arrives pre-validated by NewConfig,
// so anything unrecognized here just falls back to info.
func NewLogger(w io.Writer, env string, level string) *slog.Logger {
	l := new(slog.LevelVar)
	l.Set(parseLevel(level))

	var h slog.Handler
	switch env {
	case "prod":
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: l,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String("time", a.Value.Time().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	default:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})
	}

	return slog.New(h).With(slog.String("service", "freshcart"))
}

func parseLevel(level string) slog.Level {
	switch level {
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
