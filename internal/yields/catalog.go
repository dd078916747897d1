package yields

import (
	"context"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// Catalog supplies yield opportunities. The core never embeds this data;
// it is injected so the scanner only carries the filtering logic.
type Catalog interface {
	Opportunities(ctx context.Context) ([]Opportunity, error)
}

// StaticCatalog is a Catalog over a fixed opportunity list.
type StaticCatalog struct {
	opportunities []Opportunity
}

// NewStaticCatalog creates a catalog over the given opportunities.
func NewStaticCatalog(opportunities []Opportunity) *StaticCatalog {
	return &StaticCatalog{opportunities: opportunities}
}

// NewReferenceCatalog creates a static catalog with the reference pool set.
// A production deployment would replace this with a protocol API-backed
// catalog behind the same interface.
func NewReferenceCatalog() *StaticCatalog {
	usdc := types.AssetDescriptor{Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Symbol: "USDC", Name: "USD Coin", Decimals: 6, PriceUSD: 1.0}
	usdt := types.AssetDescriptor{Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7", Symbol: "USDT", Name: "Tether USD", Decimals: 6, PriceUSD: 1.0}
	weth := types.AssetDescriptor{Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", Symbol: "WETH", Name: "Wrapped Ether", Decimals: 18, PriceUSD: 2500.0}
	matic := types.AssetDescriptor{Address: "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270", Symbol: "MATIC", Name: "Polygon", Decimals: 18, PriceUSD: 0.8}
	usdcPolygon := types.AssetDescriptor{Address: "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174", Symbol: "USDC", Name: "USD Coin (Polygon)", Decimals: 6, PriceUSD: 1.0}
	arb := types.AssetDescriptor{Address: "0x912CE59144191c1204E64559FE8253a0e108FF3e", Symbol: "ARB", Name: "Arbitrum", Decimals: 18, PriceUSD: 0.9}
	wethArbitrum := types.AssetDescriptor{Address: "0x82aF49447d8a07e3bd95bd0d56f35241523fBab1", Symbol: "WETH", Name: "Wrapped Ether", Decimals: 18, PriceUSD: 2500.0}

	return NewStaticCatalog([]Opportunity{
		{
			PoolName: "USDC-USDT LP (Curve)", Venue: types.VenueCurve, Network: types.NetworkEthereum,
			TokenA: usdc, TokenB: usdt,
			APY: 15.5, LiquidityUSD: 500000000, TVLUSD: 800000000, RiskScore: 5.0, IncentiveMultiplier: 1.5,
		},
		{
			PoolName: "ETH-USDC LP (Uniswap V3)", Venue: types.VenueUniswapV3, Network: types.NetworkEthereum,
			TokenA: weth, TokenB: usdc,
			APY: 22.3, LiquidityUSD: 300000000, TVLUSD: 1200000000, RiskScore: 25.0, IncentiveMultiplier: 1.2,
		},
		{
			PoolName: "MATIC-USDC LP (Uniswap V3)", Venue: types.VenueUniswapV3, Network: types.NetworkPolygon,
			TokenA: matic, TokenB: usdcPolygon,
			APY: 45.2, LiquidityUSD: 150000000, TVLUSD: 500000000, RiskScore: 35.0, IncentiveMultiplier: 2.0,
		},
		{
			PoolName: "ARB-ETH LP (Camelot)", Venue: types.VenueUniswapV3, Network: types.NetworkArbitrum,
			TokenA: arb, TokenB: wethArbitrum,
			APY: 38.5, LiquidityUSD: 120000000, TVLUSD: 400000000, RiskScore: 40.0, IncentiveMultiplier: 1.8,
		},
	})
}

// Opportunities returns the full catalog.
func (c *StaticCatalog) Opportunities(_ context.Context) ([]Opportunity, error) {
	out := make([]Opportunity, len(c.opportunities))
	copy(out, c.opportunities)

	return out, nil
}
