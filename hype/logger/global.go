package logger

import (
	"log/slog"
	"time"
)

// LogFetch logs a provider fetch with its duration.
func LogFetch(season int, event string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "fetch"),
		slog.Int("season", season),
		slog.String("event", event),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Fetch failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Info("Fetch completed", attrs...)
	}
}

// LogRebuild logs a ratings rebuild outcome.
func LogRebuild(ok, failed int, duration time.Duration) {
	slog.Info("Ratings rebuild finished",
		slog.String("type", "rating"),
		slog.Int("ok", ok),
		slog.Int("failed", failed),
		slog.Duration("took", duration))
}

// LogSystem logs system events.
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events.
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
