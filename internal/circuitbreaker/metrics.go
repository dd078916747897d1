package circuitbreaker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BreakerClosed is 1 when boundary calls are allowed, 0 when open.
	BreakerClosed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "excelsior_breaker_closed",
		Help: "Whether the market data circuit breaker is closed (1) or open (0)",
	})

	// BreakerFailures tracks the current consecutive failure run.
	BreakerFailures = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "excelsior_breaker_failures",
		Help: "Current consecutive boundary failure count",
	})

	// BreakerStateChanges counts open/close transitions.
	BreakerStateChanges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "excelsior_breaker_state_changes_total",
		Help: "Total number of circuit breaker state changes",
	})

	// BreakerRejectionsTotal counts calls skipped while open.
	BreakerRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "excelsior_breaker_rejections_total",
		Help: "Total number of boundary calls rejected by the open breaker",
	})

	// BreakerProbesTotal counts recovery probes let through while open.
	BreakerProbesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "excelsior_breaker_probes_total",
		Help: "Total number of recovery probes allowed while open",
	})
)
