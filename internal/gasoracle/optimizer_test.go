package gasoracle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

func TestOptimize(t *testing.T) {
	tests := []struct {
		name        string
		current     float64
		average     float64
		urgency     Urgency
		wait        int
		recommended float64
		savingsPct  float64
	}{
		{
			name:        "double the average waits long",
			current:     100,
			average:     50,
			urgency:     UrgencyHigh,
			wait:        600,
			recommended: 50,
			savingsPct:  50,
		},
		{
			name:        "moderately elevated waits briefly",
			current:     60,
			average:     50,
			urgency:     UrgencyMedium,
			wait:        300,
			recommended: 50,
			savingsPct:  16.666666666666664,
		},
		{
			name:        "at the average executes now",
			current:     50,
			average:     50,
			urgency:     UrgencyLow,
			wait:        0,
			recommended: 50,
			savingsPct:  0,
		},
		{
			name:        "below the average executes now",
			current:     30,
			average:     50,
			urgency:     UrgencyLow,
			wait:        0,
			recommended: 30,
			savingsPct:  0,
		},
		{
			name:        "exactly at the high boundary stays medium",
			current:     65,
			average:     50,
			urgency:     UrgencyMedium,
			wait:        300,
			recommended: 50,
		},
		{
			name:        "zero signal executes now",
			current:     0,
			average:     0,
			urgency:     UrgencyLow,
			wait:        0,
			recommended: 0,
			savingsPct:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Optimize(types.FeeSignal{CurrentGwei: tt.current, AverageGwei: tt.average})

			assert.Equal(t, tt.urgency, plan.Urgency)
			assert.Equal(t, tt.wait, plan.WaitSeconds)
			assert.InDelta(t, tt.recommended, plan.RecommendedGwei, 1e-9)
			if tt.savingsPct != 0 || tt.current == 0 {
				assert.InDelta(t, tt.savingsPct, plan.SavingsPct, 1e-9)
			}
			assert.GreaterOrEqual(t, plan.SavingsPct, 0.0, "savings are never negative")
		})
	}
}

func TestPlan_EstimateSavingsUSD(t *testing.T) {
	plan := Optimize(types.FeeSignal{CurrentGwei: 100, AverageGwei: 50})

	// 120000 gas saving 50 gwei at the fixed ETH reference price.
	want := float64(120000) * 50 * 1e-9 * ethUSDReference
	assert.InDelta(t, want, plan.EstimateSavingsUSD(120000), 1e-9)
}

func TestPlan_EstimateSavingsUSD_NoWait(t *testing.T) {
	plan := Optimize(types.FeeSignal{CurrentGwei: 40, AverageGwei: 50})

	assert.Equal(t, 0.0, plan.EstimateSavingsUSD(120000))
}
