package yields

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Recommendation is an opportunity paired with a projected earnings figure.
type Recommendation struct {
	Opportunity
	EstimatedEarnings30d float64
	Tier                 string
}

// Scanner filters catalog opportunities by simple numeric criteria.
type Scanner struct {
	catalog Catalog
	logger  *zap.Logger
}

// NewScanner creates a scanner over the given catalog.
func NewScanner(catalog Catalog, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scanner{catalog: catalog, logger: logger}
}

// Scan returns catalog opportunities meeting the APY and liquidity floors,
// in catalog order.
func (s *Scanner) Scan(ctx context.Context, minAPY, minLiquidityUSD float64) ([]Opportunity, error) {
	all, err := s.catalog.Opportunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var filtered []Opportunity
	for _, opp := range all {
		if opp.APY >= minAPY && opp.LiquidityUSD >= minLiquidityUSD {
			filtered = append(filtered, opp)
		}
	}

	s.logger.Debug("yield-scan-complete",
		zap.Int("catalog-size", len(all)),
		zap.Int("matches", len(filtered)),
		zap.Float64("min-apy", minAPY),
		zap.Float64("min-liquidity", minLiquidityUSD))

	return filtered, nil
}

// Recommend returns up to five viable opportunities with 30-day earnings
// projections for the given stake.
func (s *Scanner) Recommend(ctx context.Context, amountUSD, minAPY float64) ([]Recommendation, error) {
	opportunities, err := s.Scan(ctx, minAPY, 0)
	if err != nil {
		return nil, err
	}

	var recs []Recommendation
	for _, opp := range opportunities {
		if len(recs) == 5 {
			break
		}
		if !opp.IsViable(minAPY, 100) {
			continue
		}

		recs = append(recs, Recommendation{
			Opportunity:          opp,
			EstimatedEarnings30d: opp.EstimateEarnings(amountUSD, 30),
			Tier:                 opp.ViabilityTier(),
		})
	}

	return recs, nil
}
