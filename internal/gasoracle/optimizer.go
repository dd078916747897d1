package gasoracle

import (
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// Urgency classifies how pressing execution is relative to fee conditions.
type Urgency string

const (
	UrgencyUrgent Urgency = "URGENT"
	UrgencyHigh   Urgency = "HIGH"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyLow    Urgency = "LOW"
)

// ethUSDReference is the fixed gwei→USD conversion anchor used for savings
// estimates. Placeholder for a live ETH price feed.
const ethUSDReference = 2500.0

// Plan is a timing recommendation computed fresh from one FeeSignal.
// Never mutated after construction.
type Plan struct {
	CurrentGwei     float64
	AverageGwei     float64
	RecommendedGwei float64
	WaitSeconds     int
	SavingsPct      float64
	Urgency         Urgency
}

// Optimize classifies the fee signal and recommends a wait/execute decision.
// Rules evaluated in order: current > 1.3×average waits 600s, > 1.1×average
// waits 300s, otherwise execute now at the current level.
func Optimize(signal types.FeeSignal) Plan {
	plan := Plan{
		CurrentGwei: signal.CurrentGwei,
		AverageGwei: signal.AverageGwei,
	}

	switch {
	case signal.CurrentGwei > signal.AverageGwei*1.3:
		plan.RecommendedGwei = signal.AverageGwei
		plan.Urgency = UrgencyHigh
		plan.WaitSeconds = 600
	case signal.CurrentGwei > signal.AverageGwei*1.1:
		plan.RecommendedGwei = signal.AverageGwei
		plan.Urgency = UrgencyMedium
		plan.WaitSeconds = 300
	default:
		plan.RecommendedGwei = signal.CurrentGwei
		plan.Urgency = UrgencyLow
		plan.WaitSeconds = 0
	}

	if signal.CurrentGwei > 0 {
		plan.SavingsPct = (signal.CurrentGwei - plan.RecommendedGwei) / signal.CurrentGwei * 100
	}
	if plan.SavingsPct < 0 {
		// A negative reduction means no savings, never a penalty.
		plan.SavingsPct = 0
	}

	PlansComputedTotal.WithLabelValues(string(plan.Urgency)).Inc()

	return plan
}

// EstimateSavingsUSD converts the current and recommended levels to USD for
// the given gas budget and returns the delta.
func (p Plan) EstimateSavingsUSD(gasUnits int64) float64 {
	currentCost := float64(gasUnits) * p.CurrentGwei * 1e-9 * ethUSDReference
	optimalCost := float64(gasUnits) * p.RecommendedGwei * 1e-9 * ethUSDReference

	return currentCost - optimalCost
}
