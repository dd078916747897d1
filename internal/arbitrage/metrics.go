package arbitrage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PairsEvaluatedTotal tracks forward/reverse pairs evaluated.
	PairsEvaluatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "excelsior_arb_pairs_evaluated_total",
		Help: "Total number of forward/reverse route pairs evaluated",
	})

	// CyclesDetectedTotal tracks profitable cycles detected.
	CyclesDetectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "excelsior_arb_cycles_detected_total",
		Help: "Total number of profitable arbitrage cycles detected",
	})

	// CycleProfitPct tracks round-trip profit of detected cycles.
	CycleProfitPct = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "excelsior_arb_cycle_profit_pct",
		Help:    "Round-trip profit percent of detected arbitrage cycles",
		Buckets: []float64{0.5, 1, 2, 5, 10, 25, 50, 100},
	})
)
