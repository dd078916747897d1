package gasoracle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

func TestStaticSource_FeeSignal(t *testing.T) {
	source := NewStaticSource()

	tests := []struct {
		network  types.Network
		standard float64
	}{
		{types.NetworkEthereum, 55},
		{types.NetworkPolygon, 50},
		{types.NetworkArbitrum, 0.15},
		{types.NetworkOptimism, 1.0},
		{types.NetworkBase, 70}, // no entry, conservative default
	}

	for _, tt := range tests {
		signal := source.FeeSignal(context.Background(), tt.network)

		assert.InDelta(t, tt.standard, signal.CurrentGwei, 1e-9, "network %s", tt.network)
		assert.InDelta(t, tt.standard*1.1, signal.AverageGwei, 1e-9, "network %s", tt.network)
	}
}

func TestStaticSource_Tier(t *testing.T) {
	source := NewStaticSource()

	eth := source.Tier(types.NetworkEthereum)
	assert.Equal(t, PriceTier{Safe: 45, Standard: 55, Fast: 70}, eth)

	unknown := source.Tier(types.Network("unknown"))
	assert.Equal(t, defaultTier, unknown)
}

func TestStaticSource_AlwaysLowUrgency(t *testing.T) {
	// A synthesized average 10% above current means the optimizer never
	// recommends waiting on static data.
	source := NewStaticSource()

	for _, network := range types.AllNetworks() {
		plan := Optimize(source.FeeSignal(context.Background(), network))
		assert.Equal(t, UrgencyLow, plan.Urgency, "network %s", network)
	}
}
