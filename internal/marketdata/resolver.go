package marketdata

import (
	"context"
	"strings"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// Resolver resolves an asset reference (contract address or symbol) into a
// descriptor. Resolution failures never cross this boundary as errors:
// implementations return a degraded descriptor with zero price and
// liquidity, which downstream pricing handles with its documented
// fallbacks.
type Resolver interface {
	Resolve(ctx context.Context, ref string, network types.Network) types.AssetDescriptor
}

// degradedDescriptor builds the descriptor returned on any resolution
// failure. The symbol placeholder is derived from the reference suffix.
func degradedDescriptor(ref string) types.AssetDescriptor {
	symbol := strings.ToUpper(ref)
	if len(symbol) > 4 {
		symbol = symbol[len(symbol)-4:]
	}

	return types.AssetDescriptor{
		Address:  ref,
		Symbol:   symbol,
		Name:     "Token",
		Decimals: 18,
	}
}
