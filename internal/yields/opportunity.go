package yields

import (
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// Viability tiers derived from an opportunity's risk score.
const (
	TierExcellent = "EXCELLENT"
	TierGood      = "GOOD"
	TierModerate  = "MODERATE"
)

// Opportunity is a yield-bearing position supplied by a Catalog. The core
// applies only simple numeric filters on top of it.
type Opportunity struct {
	PoolName            string
	Venue               types.Venue
	Network             types.Network
	TokenA              types.AssetDescriptor
	TokenB              types.AssetDescriptor
	APY                 float64
	LiquidityUSD        float64
	TVLUSD              float64
	RiskScore           float64 // 0-100, lower is safer
	IncentiveMultiplier float64
}

// IsViable reports whether the opportunity meets the given criteria.
func (o Opportunity) IsViable(minAPY, maxRisk float64) bool {
	return o.APY >= minAPY && o.RiskScore <= maxRisk
}

// EstimateEarnings projects earnings in USD over the given timeframe,
// including the incentive multiplier.
func (o Opportunity) EstimateEarnings(amountUSD float64, days int) float64 {
	dailyRate := o.APY / 365 / 100

	return amountUSD * dailyRate * float64(days) * o.IncentiveMultiplier
}

// ViabilityTier maps the risk score onto a coarse quality tier.
func (o Opportunity) ViabilityTier() string {
	switch {
	case o.RiskScore < 20:
		return TierExcellent
	case o.RiskScore < 50:
		return TierGood
	default:
		return TierModerate
	}
}
