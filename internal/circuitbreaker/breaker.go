package circuitbreaker

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Breaker guards the market-data boundary: after a run of consecutive
// failures the breaker opens and callers skip the upstream fetch, taking
// the degraded-metadata path instead. After the recovery timeout the next
// call is allowed through to probe the upstream.
type Breaker struct {
	closed atomic.Bool // Atomic for lock-free reads on the hot path

	failureThreshold int
	recoveryTimeout  time.Duration
	logger           *zap.Logger

	// Protected by mutex
	mu           sync.RWMutex
	failures     int
	lastFailure  time.Time
	stateChanges int
}

// Config holds breaker configuration.
type Config struct {
	FailureThreshold int
	RecoveryTimeout  time.Duration
	Logger           *zap.Logger
}

// Status holds current breaker status for debugging and HTTP endpoints.
type Status struct {
	Closed       bool
	Failures     int
	LastFailure  time.Time
	StateChanges int
}

// New creates a new breaker with the given configuration.
func New(cfg *Config) (*Breaker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if cfg.FailureThreshold <= 0 {
		return nil, fmt.Errorf("failure threshold must be positive")
	}
	if cfg.RecoveryTimeout <= 0 {
		return nil, fmt.Errorf("recovery timeout must be positive")
	}

	b := &Breaker{
		failureThreshold: cfg.FailureThreshold,
		recoveryTimeout:  cfg.RecoveryTimeout,
		logger:           cfg.Logger,
	}
	b.closed.Store(true)

	BreakerClosed.Set(1)

	return b, nil
}

// Allow reports whether a boundary call should be attempted. When the
// breaker is open, a single probe is allowed once the recovery timeout
// since the last failure has elapsed.
func (b *Breaker) Allow() bool {
	if b.closed.Load() {
		return true
	}

	b.mu.RLock()
	elapsed := time.Since(b.lastFailure)
	b.mu.RUnlock()

	if elapsed >= b.recoveryTimeout {
		BreakerProbesTotal.Inc()
		return true
	}

	BreakerRejectionsTotal.Inc()

	return false
}

// RecordSuccess resets the failure run and closes the breaker.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0

	if !b.closed.Load() {
		b.closed.Store(true)
		b.stateChanges++
		BreakerClosed.Set(1)
		BreakerStateChanges.Inc()

		b.logger.Info("circuit-breaker-closed")
	}
}

// RecordFailure counts a boundary failure and opens the breaker once the
// run reaches the threshold.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	b.lastFailure = time.Now()
	BreakerFailures.Set(float64(b.failures))

	if b.closed.Load() && b.failures >= b.failureThreshold {
		b.closed.Store(false)
		b.stateChanges++
		BreakerClosed.Set(0)
		BreakerStateChanges.Inc()

		b.logger.Warn("circuit-breaker-opened",
			zap.Int("failures", b.failures),
			zap.Int("threshold", b.failureThreshold),
			zap.Duration("recovery-timeout", b.recoveryTimeout))
	}
}

// GetStatus returns current breaker status.
func (b *Breaker) GetStatus() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return Status{
		Closed:       b.closed.Load(),
		Failures:     b.failures,
		LastFailure:  b.lastFailure,
		StateChanges: b.stateChanges,
	}
}
