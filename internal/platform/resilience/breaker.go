package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrBreakerOpen = errors.New("circuit breaker is open")

type BreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
	}
}

func NormalizeBreakerConfig(cfg BreakerConfig) BreakerConfig {
	defaults := DefaultBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	return cfg
}

// Breaker rejects calls after a run of consecutive failures. Once the open
// window elapses it lets a single probe through: a probe success closes
// the breaker, a probe failure reopens it for another window.
type Breaker struct {
	mu sync.Mutex

	failureThreshold int
	openTimeout      time.Duration

	failures int
	openedAt time.Time
	probing  bool
	now      func() time.Time
}

func NewBreaker(failureThreshold int, openTimeout time.Duration) *Breaker {
	cfg := NormalizeBreakerConfig(BreakerConfig{
		FailureThreshold: failureThreshold,
		OpenTimeout:      openTimeout,
	})

	return &Breaker{
		failureThreshold: cfg.FailureThreshold,
		openTimeout:      cfg.OpenTimeout,
		now:              time.Now,
	}
}

func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failures < b.failureThreshold {
		return nil
	}
	if b.now().Sub(b.openedAt) < b.openTimeout {
		return ErrBreakerOpen
	}
	if b.probing {
		return ErrBreakerOpen
	}

	b.probing = true
	return nil
}

func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	b.probing = false
	b.openedAt = time.Time{}
}

func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	b.probing = false
	if b.failures >= b.failureThreshold {
		b.openedAt = b.now()
	}
}

// Open reports whether the breaker currently rejects non-probe calls.
func (b *Breaker) Open() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.failures >= b.failureThreshold && b.now().Sub(b.openedAt) < b.openTimeout
}
