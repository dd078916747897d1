package arbitrage

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/marketdata"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/routing"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// DefaultProfitThresholdPct is the minimum round-trip profit for a pair
// to count as a cycle.
const DefaultProfitThresholdPct = 0.5

// Detector finds round-trip price discrepancies across a venue set.
type Detector struct {
	config   Config
	resolver marketdata.Resolver
	logger   *zap.Logger
}

// Config holds detector configuration.
type Config struct {
	ProfitThresholdPct float64
	Network            types.Network
	Resolver           marketdata.Resolver
	Logger             *zap.Logger
}

// New creates a new arbitrage detector.
func New(cfg Config) *Detector {
	// Zero means unset; a negative threshold is a deliberate
	// "keep every pair" setting and is honored as given.
	if cfg.ProfitThresholdPct == 0 {
		cfg.ProfitThresholdPct = DefaultProfitThresholdPct
	}
	if cfg.Network == "" {
		cfg.Network = types.NetworkEthereum
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Detector{config: cfg, resolver: cfg.Resolver, logger: cfg.Logger}
}

// FindCyclesByRef resolves both token references through the market data
// boundary (degrading on failure) and scans for cycles. amount is in whole
// tokens of the first asset.
func (d *Detector) FindCyclesByRef(ctx context.Context, refA, refB string, amount float64, venues []types.Venue) []Cycle {
	if d.resolver == nil {
		return nil
	}

	resolveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tokenA := d.resolver.Resolve(resolveCtx, refA, d.config.Network)
	tokenB := d.resolver.Resolve(resolveCtx, refB, d.config.Network)

	return d.FindCycles(tokenA, tokenB, tokenA.Denormalize(amount), venues)
}

// FindCycles simulates every venue for the forward leg (A→B) and every
// venue for the reverse leg (B→A), composing |venues|² round-trip pairs.
// Pairs above the profit threshold are returned ranked descending by
// |forward.ExpectedOut - reverse.AmountIn|. That key mixes the two legs'
// decimal scales; it is kept as the reference cycle-size heuristic, with
// ProfitPct available on each cycle for unit-consistent re-ranking.
func (d *Detector) FindCycles(tokenA, tokenB types.AssetDescriptor, amountIn float64, venues []types.Venue) []Cycle {
	if len(venues) == 0 {
		venues = types.DefaultVenues()
	}

	forward := make([]routing.RouteCandidate, 0, len(venues))
	reverse := make([]routing.RouteCandidate, 0, len(venues))
	for _, venue := range venues {
		forward = append(forward, routing.Simulate(tokenA, tokenB, amountIn, d.config.Network, venue))
	}
	for _, venue := range venues {
		reverse = append(reverse, routing.Simulate(tokenB, tokenA, amountIn, d.config.Network, venue))
	}

	var cycles []Cycle
	for _, fwd := range forward {
		for _, rev := range reverse {
			PairsEvaluatedTotal.Inc()

			cycle := NewCycle(fwd, rev, amountIn)
			if cycle.ProfitPct <= d.config.ProfitThresholdPct {
				continue
			}

			CyclesDetectedTotal.Inc()
			CycleProfitPct.Observe(cycle.ProfitPct)

			d.logger.Debug("cycle-detected",
				zap.String("cycle-id", cycle.ID),
				zap.String("forward-venue", string(fwd.Venue)),
				zap.String("reverse-venue", string(rev.Venue)),
				zap.Float64("profit-pct", cycle.ProfitPct))

			cycles = append(cycles, cycle)
		}
	}

	sort.SliceStable(cycles, func(i, j int) bool {
		return cycles[i].RankingKey > cycles[j].RankingKey
	})

	return cycles
}
