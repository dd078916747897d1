package gasoracle

import (
	"context"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// SignalSource supplies current and trailing-average fee levels for a
// network. Implementations must resolve failures to a conservative default
// pair rather than returning an error across this boundary.
type SignalSource interface {
	FeeSignal(ctx context.Context, network types.Network) types.FeeSignal
}

// PriceTier holds the per-network gas price ladder in gwei.
type PriceTier struct {
	Safe     float64
	Standard float64
	Fast     float64
}

// defaultTier is the conservative fallback for networks with no entry.
var defaultTier = PriceTier{Safe: 50, Standard: 70, Fast: 100}

// StaticSource serves fee signals from a fixed per-network price table.
// The trailing average is synthesized as 1.1× the standard level, standing
// in for a real 24h average feed.
type StaticSource struct {
	tiers map[types.Network]PriceTier
}

// NewStaticSource creates a static source with the reference price table.
func NewStaticSource() *StaticSource {
	return &StaticSource{
		tiers: map[types.Network]PriceTier{
			types.NetworkEthereum: {Safe: 45, Standard: 55, Fast: 70},
			types.NetworkPolygon:  {Safe: 35, Standard: 50, Fast: 80},
			types.NetworkArbitrum: {Safe: 0.1, Standard: 0.15, Fast: 0.25},
			types.NetworkOptimism: {Safe: 0.5, Standard: 1.0, Fast: 2.0},
		},
	}
}

// FeeSignal returns the signal for a network, falling back to the
// conservative default tier when the network has no entry.
func (s *StaticSource) FeeSignal(_ context.Context, network types.Network) types.FeeSignal {
	tier, ok := s.tiers[network]
	if !ok {
		tier = defaultTier
	}

	return types.FeeSignal{
		CurrentGwei: tier.Standard,
		AverageGwei: tier.Standard * 1.1,
	}
}

// Tier returns the full price ladder for a network.
func (s *StaticSource) Tier(network types.Network) PriceTier {
	tier, ok := s.tiers[network]
	if !ok {
		return defaultTier
	}

	return tier
}
