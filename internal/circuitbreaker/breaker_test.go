package circuitbreaker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBreaker(t *testing.T, threshold int, recovery time.Duration) *Breaker {
	t.Helper()

	b, err := New(&Config{
		FailureThreshold: threshold,
		RecoveryTimeout:  recovery,
		Logger:           zap.NewNop(),
	})
	require.NoError(t, err)

	return b
}

func TestNew_Validation(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"nil logger", &Config{FailureThreshold: 3, RecoveryTimeout: time.Second}},
		{"zero threshold", &Config{RecoveryTimeout: time.Second, Logger: logger}},
		{"zero recovery", &Config{FailureThreshold: 3, Logger: logger}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestBreaker_OpensAtThreshold(t *testing.T) {
	b := newTestBreaker(t, 3, time.Hour)

	assert.True(t, b.Allow())

	b.RecordFailure()
	b.RecordFailure()
	assert.True(t, b.Allow(), "below threshold stays closed")

	b.RecordFailure()
	assert.False(t, b.Allow(), "threshold reached opens the breaker")

	status := b.GetStatus()
	assert.False(t, status.Closed)
	assert.Equal(t, 3, status.Failures)
	assert.Equal(t, 1, status.StateChanges)
}

func TestBreaker_SuccessResets(t *testing.T) {
	b := newTestBreaker(t, 3, time.Hour)

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	b.RecordFailure()

	assert.True(t, b.Allow(), "a success resets the failure run")
}

func TestBreaker_RecoveryProbe(t *testing.T) {
	b := newTestBreaker(t, 1, 30*time.Millisecond)

	b.RecordFailure()
	assert.False(t, b.Allow())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, b.Allow(), "recovery timeout elapsed allows a probe")

	b.RecordSuccess()
	assert.True(t, b.Allow())
	assert.True(t, b.GetStatus().Closed)
}

func TestBreaker_ReopensOnFailedProbe(t *testing.T) {
	b := newTestBreaker(t, 1, 30*time.Millisecond)

	b.RecordFailure()
	time.Sleep(50 * time.Millisecond)
	require.True(t, b.Allow())

	// Probe failed: the clock on the recovery window restarts.
	b.RecordFailure()
	assert.False(t, b.Allow())
}
