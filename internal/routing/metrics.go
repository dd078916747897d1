package routing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RoutesSimulatedTotal tracks simulated candidate routes by venue.
	RoutesSimulatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "excelsior_routes_simulated_total",
			Help: "Total number of candidate routes simulated",
		},
		[]string{"venue"},
	)

	// RoutesRejectedTotal tracks candidates dropped during selection.
	RoutesRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "excelsior_routes_rejected_total",
			Help: "Total number of candidate routes rejected during selection",
		},
		[]string{"reason"},
	)

	// RoutesSelectedTotal tracks successful selections.
	RoutesSelectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "excelsior_routes_selected_total",
		Help: "Total number of best routes selected",
	})

	// RouteSelectedCostUSD tracks the total cost of selected routes.
	RouteSelectedCostUSD = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "excelsior_route_selected_cost_usd",
		Help:    "Total cost in USD of selected routes",
		Buckets: prometheus.ExponentialBuckets(1, 10, 8), // 1, 10, ..., 1e7
	})
)
