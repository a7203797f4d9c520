package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestBreakerAllow_ClosedUntilThreshold(t *testing.T) {
	t.Parallel()

	b := NewBreaker(3, time.Minute)

	for i := 0; i < 2; i++ {
		b.RecordFailure()
		if err := b.Allow(); err != nil {
			t.Fatalf("breaker opened below threshold after %d failures: %v", i+1, err)
		}
	}

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected ErrBreakerOpen at threshold, got %v", err)
	}
	if !b.Open() {
		t.Fatal("expected Open() to report true")
	}
}

func TestBreakerAllow_SingleProbeAfterOpenTimeout(t *testing.T) {
	t.Parallel()

	current := time.Unix(1000, 0)
	b := NewBreaker(1, 10*time.Second)
	b.now = func() time.Time { return current }

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected open breaker, got %v", err)
	}

	current = current.Add(11 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}
	// Only one probe at a time.
	if err := b.Allow(); !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected second probe rejected, got %v", err)
	}
}

func TestBreakerProbeSuccessCloses(t *testing.T) {
	t.Parallel()

	current := time.Unix(1000, 0)
	b := NewBreaker(1, 10*time.Second)
	b.now = func() time.Time { return current }

	b.RecordFailure()
	current = current.Add(11 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}

	b.RecordSuccess()
	if err := b.Allow(); err != nil {
		t.Fatalf("expected closed breaker after probe success, got %v", err)
	}
	if b.Open() {
		t.Fatal("expected Open() to report false after success")
	}
}

func TestBreakerProbeFailureReopens(t *testing.T) {
	t.Parallel()

	current := time.Unix(1000, 0)
	b := NewBreaker(1, 10*time.Second)
	b.now = func() time.Time { return current }

	b.RecordFailure()
	current = current.Add(11 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected reopened breaker, got %v", err)
	}
}

func TestNormalizeBreakerConfig_FillsDefaults(t *testing.T) {
	t.Parallel()

	cfg := NormalizeBreakerConfig(BreakerConfig{Enabled: true})
	defaults := DefaultBreakerConfig()

	if cfg.FailureThreshold != defaults.FailureThreshold {
		t.Fatalf("unexpected threshold: %d", cfg.FailureThreshold)
	}
	if cfg.OpenTimeout != defaults.OpenTimeout {
		t.Fatalf("unexpected open timeout: %s", cfg.OpenTimeout)
	}
	if !cfg.Enabled {
		t.Fatal("expected enabled to be preserved")
	}
}
