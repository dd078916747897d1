package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/testutil"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

func TestSimulate_ExchangeRate(t *testing.T) {
	weth := testutil.WETH()
	usdc := testutil.USDC()

	// 1.5 WETH at $2500 should come out near 3750 USDC, less slippage.
	route := Simulate(weth, usdc, weth.Denormalize(1.5), types.NetworkEthereum, types.VenueUniswapV3)

	outWhole := usdc.Normalize(route.ExpectedOut)
	assert.Greater(t, outWhole, 1.5*2500*0.90)
	assert.LessOrEqual(t, outWhole, 1.5*2500*1.0)
	assert.Equal(t, types.VenueUniswapV3, route.Venue)
	assert.Equal(t, types.NetworkEthereum, route.Network)
	assert.Equal(t, int64(120000), route.GasUnits)
}

func TestSimulate_ZeroSourcePrice(t *testing.T) {
	unpriced := types.AssetDescriptor{Symbol: "XXX", Decimals: 18, LiquidityUSD: 1000}
	usdc := testutil.USDC()

	route := Simulate(unpriced, usdc, unpriced.Denormalize(10), types.NetworkEthereum, types.VenueUniswapV2)

	assert.Equal(t, 0.0, route.ExpectedOut, "zero source price should yield zero output, not an error")
	assert.GreaterOrEqual(t, route.SlippagePct, 0.0)
}

func TestSimulate_DecimalRescaling(t *testing.T) {
	weth := testutil.WETH() // 18 decimals
	usdc := testutil.USDC() // 6 decimals

	route := Simulate(weth, usdc, weth.Denormalize(1.0), types.NetworkEthereum, types.VenueCurve)

	// Output must be in USDC smallest units: near 2500 * 1e6, not 2500 * 1e18.
	assert.InEpsilon(t, 2500.0*1e6, route.ExpectedOut, 0.10)
}

func TestSimulate_LatencyAttributed(t *testing.T) {
	route := Simulate(testutil.WETH(), testutil.USDC(), 1e18, types.NetworkEthereum, types.VenueUniswapV3)
	assert.Equal(t, nominalExecutionLatency, route.ExecutionLatency)
}

func TestRouteCandidate_TotalCostUSD(t *testing.T) {
	weth := testutil.WETH()
	usdc := testutil.USDC()

	route := RouteCandidate{
		Source:      weth,
		Target:      usdc,
		AmountIn:    weth.Denormalize(2.0),
		SlippagePct: 1.0,
		GasUnits:    100000,
	}

	// 2 whole tokens * 1% slippage + 100000 gas units at the fixed unit price.
	want := 2.0*0.01 + 100000*nominalGasUnitPriceUSD
	assert.InDelta(t, want, route.TotalCostUSD(), 1e-9)
}

func TestRouteCandidate_EffectivePrice(t *testing.T) {
	weth := testutil.WETH()
	usdc := testutil.USDC()

	route := Simulate(weth, usdc, weth.Denormalize(1.0), types.NetworkEthereum, types.VenueUniswapV3)

	price := route.EffectivePrice()
	assert.Greater(t, price, 0.0)
	// Paying WETH for USDC: effective price is a small fraction of a WETH per USDC.
	assert.Less(t, price, 1.0)

	zeroOut := RouteCandidate{Source: weth, Target: usdc, AmountIn: 1e18, ExpectedOut: 0}
	assert.Equal(t, 0.0, zeroOut.EffectivePrice())
}
