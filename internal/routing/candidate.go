package routing

import (
	"fmt"
	"time"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// nominalGasUnitPriceUSD is the fixed reference conversion from gas units
// to USD used for route cost scoring. Placeholder for a live fee-price feed.
const nominalGasUnitPriceUSD = 50.0

// nominalExecutionLatency is the fixed latency attributed to every
// simulated route.
const nominalExecutionLatency = 15 * time.Second

// RouteCandidate is a fully populated simulated execution on one venue.
// AmountIn and ExpectedOut are in the respective asset's smallest units.
type RouteCandidate struct {
	Source           types.AssetDescriptor
	Target           types.AssetDescriptor
	AmountIn         float64
	ExpectedOut      float64
	Venue            types.Venue
	Network          types.Network
	GasUnits         int64
	PriceImpactPct   float64
	SlippagePct      float64
	ExecutionLatency time.Duration
}

// TotalCostUSD scores the route: slippage loss on the swapped value plus
// gas at the fixed reference unit price. Lower is better.
func (r RouteCandidate) TotalCostUSD() float64 {
	swapValue := r.Source.Normalize(r.AmountIn)
	gasCost := float64(r.GasUnits) * nominalGasUnitPriceUSD

	return swapValue*(r.SlippagePct/100) + gasCost
}

// EffectivePrice is the slippage-adjusted input units paid per output unit.
// Returns 0 when the adjusted output underflows to nothing.
func (r RouteCandidate) EffectivePrice() float64 {
	in := r.Source.Normalize(r.AmountIn)
	out := r.Target.Normalize(r.ExpectedOut * (1 - r.SlippagePct/100))
	if out <= 0 {
		return 0
	}

	return in / out
}

// String renders a compact one-line summary for logs and console output.
func (r RouteCandidate) String() string {
	return fmt.Sprintf(
		"Route[%s→%s] venue=%s network=%s out=%s slippage=%.4f%% impact=%.4f%% gas=%d",
		r.Source.Symbol, r.Target.Symbol, r.Venue, r.Network,
		r.Target.FormatAmount(r.ExpectedOut), r.SlippagePct, r.PriceImpactPct, r.GasUnits,
	)
}
