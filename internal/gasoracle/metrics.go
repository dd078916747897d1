package gasoracle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlansComputedTotal tracks fee timing plans computed by urgency tier.
	PlansComputedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "excelsior_gas_plans_computed_total",
			Help: "Total number of fee timing plans computed",
		},
		[]string{"urgency"},
	)
)
