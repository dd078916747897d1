package types

import (
	"math"
	"strconv"
)

// AssetDescriptor holds token metadata and pricing as resolved by the
// market data layer. Values are read-only once constructed; zero-valued
// price or liquidity marks degraded data, not an error.
type AssetDescriptor struct {
	Address      string
	Symbol       string
	Name         string
	Decimals     int
	PriceUSD     float64
	LiquidityUSD float64
}

// Normalize converts a raw amount in smallest units to a whole-token amount.
func (a AssetDescriptor) Normalize(raw float64) float64 {
	return raw / math.Pow10(a.Decimals)
}

// Denormalize converts a whole-token amount back into smallest units.
func (a AssetDescriptor) Denormalize(amount float64) float64 {
	return amount * math.Pow10(a.Decimals)
}

// FormatAmount renders a raw smallest-unit amount as a decimal token amount.
func (a AssetDescriptor) FormatAmount(raw float64) string {
	return strconv.FormatFloat(a.Normalize(raw), 'f', -1, 64)
}

// Degraded reports whether the descriptor carries fallback (zero) pricing data.
func (a AssetDescriptor) Degraded() bool {
	return a.PriceUSD <= 0 || a.LiquidityUSD <= 0
}
