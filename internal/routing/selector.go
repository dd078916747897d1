package routing

import (
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// SelectBest simulates the Cartesian product of networks × venues, drops
// candidates above the slippage ceiling, and returns the minimum-cost
// survivor. Ties keep the first-encountered candidate, so identical inputs
// with identical iteration order always select the identical route.
// The second return is false when nothing survives filtering.
func SelectBest(source, target types.AssetDescriptor, amountIn float64, networks []types.Network, venues []types.Venue, maxSlippagePct float64) (RouteCandidate, bool) {
	if len(networks) == 0 {
		networks = []types.Network{types.NetworkEthereum}
	}
	if len(venues) == 0 {
		venues = types.DefaultVenues()
	}

	var (
		best      RouteCandidate
		bestCost  float64
		haveRoute bool
	)

	for _, network := range networks {
		for _, venue := range venues {
			candidate := Simulate(source, target, amountIn, network, venue)

			if candidate.SlippagePct > maxSlippagePct {
				RoutesRejectedTotal.WithLabelValues("slippage_above_ceiling").Inc()
				continue
			}

			cost := candidate.TotalCostUSD()
			if !haveRoute || cost < bestCost {
				best = candidate
				bestCost = cost
				haveRoute = true
			}
		}
	}

	if haveRoute {
		RoutesSelectedTotal.Inc()
		RouteSelectedCostUSD.Observe(bestCost)
	}

	return best, haveRoute
}
