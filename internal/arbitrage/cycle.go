package arbitrage

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/routing"
)

// Cycle is a forward-then-reverse route pair whose composed round-trip
// output exceeds the original input beyond the profitability threshold.
// Ephemeral: recomputed per query, never persisted.
type Cycle struct {
	ID         string
	Forward    routing.RouteCandidate
	Reverse    routing.RouteCandidate
	ProfitPct  float64
	RankingKey float64
	DetectedAt time.Time
}

// NewCycle composes the round-trip math for one forward/reverse pair.
// The reverse leg's per-unit rate is applied to the forward leg's
// target-normalized output, producing a final amount back in source units.
func NewCycle(forward, reverse routing.RouteCandidate, amountIn float64) Cycle {
	forwardOutNorm := forward.Target.Normalize(forward.ExpectedOut)

	reverseRate := 0.0
	if reverse.AmountIn > 0 {
		reverseRate = reverse.ExpectedOut / reverse.AmountIn
	}

	finalNorm := forwardOutNorm * reverseRate
	originalNorm := forward.Source.Normalize(amountIn)

	profitPct := 0.0
	if originalNorm > 0 {
		profitPct = (finalNorm - originalNorm) / originalNorm * 100
	}

	return Cycle{
		ID:         uuid.New().String(),
		Forward:    forward,
		Reverse:    reverse,
		ProfitPct:  profitPct,
		RankingKey: math.Abs(forward.ExpectedOut - reverse.AmountIn),
		DetectedAt: time.Now(),
	}
}

// String renders a compact one-line summary for logs and console output.
func (c Cycle) String() string {
	return fmt.Sprintf(
		"Cycle[%s] %s→%s→%s fwd=%s rev=%s profit=%.4f%%",
		c.ID[:8],
		c.Forward.Source.Symbol, c.Forward.Target.Symbol, c.Forward.Source.Symbol,
		c.Forward.Venue, c.Reverse.Venue, c.ProfitPct,
	)
}
