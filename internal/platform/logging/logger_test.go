package logging

import (
	"context"
	"log/slog"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerWritesKeyValuePairs(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Info("catalog loaded", "entry_count", 3, "source", "football-data")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "catalog loaded" {
		t.Fatalf("unexpected message: %s", entries[0].Message)
	}

	fields := entries[0].ContextMap()
	if fields["entry_count"] != int64(3) {
		t.Fatalf("unexpected entry_count: %v", fields["entry_count"])
	}
	if fields["source"] != "football-data" {
		t.Fatalf("unexpected source: %v", fields["source"])
	}
}

func TestLoggerContextWithoutSpanAddsNoTraceFields(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.InfoContext(context.Background(), "no active span")

	fields := observed.All()[0].ContextMap()
	if _, ok := fields["trace_id"]; ok {
		t.Fatal("unexpected trace_id without an active span")
	}
}

func TestLoggerOddArgsDoNotPanic(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Warn("dangling key", "orphan")

	fields := observed.All()[0].ContextMap()
	if _, ok := fields["orphan"]; !ok {
		t.Fatal("expected dangling key to be kept with a nil value")
	}
}

func TestSlogLevelMapping(t *testing.T) {
	t.Parallel()

	cases := map[Level]slog.Level{
		LevelDebug: slog.LevelDebug,
		LevelInfo:  slog.LevelInfo,
		LevelWarn:  slog.LevelWarn,
		LevelError: slog.LevelError,
	}
	for in, want := range cases {
		if got := SlogLevel(in); got != want {
			t.Fatalf("SlogLevel(%s) = %s, want %s", in, got, want)
		}
	}
}
