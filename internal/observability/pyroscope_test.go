package observability

import (
	"io"
	"log/slog"
	"testing"

	"github.com/riskibarqy/competition-lookup/internal/config"
)

func TestInitPyroscope_Disabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logger)
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}
