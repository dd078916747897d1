package testutil

import (
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// WETH returns the canonical test descriptor for wrapped ether.
func WETH() types.AssetDescriptor {
	return types.AssetDescriptor{
		Address:      "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		Symbol:       "WETH",
		Name:         "Wrapped Ether",
		Decimals:     18,
		PriceUSD:     2500.0,
		LiquidityUSD: 300000000,
	}
}

// USDC returns the canonical test descriptor for USD Coin.
func USDC() types.AssetDescriptor {
	return types.AssetDescriptor{
		Address:      "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		Symbol:       "USDC",
		Name:         "USD Coin",
		Decimals:     6,
		PriceUSD:     1.0,
		LiquidityUSD: 500000000,
	}
}

// USDT returns the canonical test descriptor for Tether.
func USDT() types.AssetDescriptor {
	return types.AssetDescriptor{
		Address:      "0xdAC17F958D2ee523a2206206994597C13D831ec7",
		Symbol:       "USDT",
		Name:         "Tether USD",
		Decimals:     6,
		PriceUSD:     1.0,
		LiquidityUSD: 500000000,
	}
}

// ThinToken returns a descriptor with very shallow liquidity, useful for
// forcing slippage-ceiling rejections.
func ThinToken() types.AssetDescriptor {
	return types.AssetDescriptor{
		Address:      "0x1111111111111111111111111111111111111111",
		Symbol:       "THIN",
		Name:         "Thin Token",
		Decimals:     18,
		PriceUSD:     1.0,
		LiquidityUSD: 100,
	}
}

// CreateTradeRequest builds a valid trade request for amount whole source
// tokens on ethereum.
func CreateTradeRequest(source, target types.AssetDescriptor, amount float64) types.TradeRequest {
	return types.TradeRequest{
		Source:   source,
		Target:   target,
		AmountIn: source.Denormalize(amount),
		Network:  types.NetworkEthereum,
	}
}
