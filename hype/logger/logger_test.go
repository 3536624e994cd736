package logger

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestCustomHandler_Enabled(t *testing.T) {
	tests := []struct {
		name    string
		handler slog.Level
		record  slog.Level
		want    bool
	}{
		{name: "info handler passes info", handler: slog.LevelInfo, record: slog.LevelInfo, want: true},
		{name: "info handler drops debug", handler: slog.LevelInfo, record: slog.LevelDebug, want: false},
		{name: "warn handler drops info", handler: slog.LevelWarn, record: slog.LevelInfo, want: false},
		{name: "warn handler passes error", handler: slog.LevelWarn, record: slog.LevelError, want: true},
		{name: "debug handler passes everything", handler: slog.LevelDebug, record: slog.LevelDebug, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.handler)
			if got := h.Enabled(context.Background(), tt.record); got != tt.want {
				t.Errorf("Enabled(%v) with handler level %v = %v, want %v", tt.record, tt.handler, got, tt.want)
			}
		})
	}
}

func TestGetLogType(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		attrs []slog.Attr
		want  LogType
	}{
		{name: "fetch attr", level: slog.LevelInfo, attrs: []slog.Attr{slog.String("type", "fetch")}, want: TypeFetch},
		{name: "db attr", level: slog.LevelInfo, attrs: []slog.Attr{slog.String("type", "db")}, want: TypeDB},
		{name: "rating attr", level: slog.LevelInfo, attrs: []slog.Attr{slog.String("type", "rating")}, want: TypeRating},
		{name: "no attr defaults to system", level: slog.LevelInfo, want: TypeSystem},
		{name: "error level overrides attr", level: slog.LevelError, attrs: []slog.Attr{slog.String("type", "db")}, want: TypeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := slog.NewRecord(time.Now(), tt.level, "msg", 0)
			r.AddAttrs(tt.attrs...)
			if got := getLogType(&r); got != tt.want {
				t.Errorf("getLogType() = %v, want %v", got, tt.want)
			}
		})
	}
}
