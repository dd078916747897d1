package routing

import (
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// Simulate produces a candidate route for one (network, venue) pair.
// A zero price on either side yields a zero-rate route rather than
// failing, and the expected output is clamped to non-negative.
func Simulate(source, target types.AssetDescriptor, amountIn float64, network types.Network, venue types.Venue) RouteCandidate {
	RoutesSimulatedTotal.WithLabelValues(string(venue)).Inc()

	baseRate := 0.0
	if source.PriceUSD > 0 && target.PriceUSD > 0 {
		baseRate = source.PriceUSD / target.PriceUSD
	}

	amountNorm := source.Normalize(amountIn)
	quote := PriceVenue(venue, source, target, amountNorm)

	expectedNorm := amountNorm * baseRate * (1 - quote.SlippagePct/100)
	if expectedNorm < 0 {
		expectedNorm = 0
	}

	return RouteCandidate{
		Source:           source,
		Target:           target,
		AmountIn:         amountIn,
		ExpectedOut:      target.Denormalize(expectedNorm),
		Venue:            venue,
		Network:          network,
		GasUnits:         quote.GasUnits,
		PriceImpactPct:   quote.PriceImpactPct,
		SlippagePct:      quote.SlippagePct,
		ExecutionLatency: nominalExecutionLatency,
	}
}
