package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DecisionsTotal tracks decide calls by outcome.
	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "excelsior_engine_decisions_total",
			Help: "Total number of execute decisions by outcome",
		},
		[]string{"outcome"},
	)

	// DecisionDurationSeconds tracks end-to-end decision latency.
	DecisionDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "excelsior_engine_decision_duration_seconds",
		Help:    "Duration of execute decisions",
		Buckets: prometheus.DefBuckets,
	})

	// HistorySize tracks the in-memory execution history length.
	HistorySize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "excelsior_engine_history_size",
		Help: "Current number of records in the execution history",
	})
)
