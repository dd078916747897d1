package marketdata

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ResolutionsTotal tracks asset resolution attempts.
	ResolutionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "excelsior_marketdata_resolutions_total",
		Help: "Total number of asset resolution attempts",
	})

	// ResolutionFailuresTotal tracks resolutions that took the degraded path.
	ResolutionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "excelsior_marketdata_resolution_failures_total",
			Help: "Total number of resolutions resolved via the degraded path",
		},
		[]string{"reason"},
	)

	// ResolutionDurationSeconds tracks boundary call latency.
	ResolutionDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "excelsior_marketdata_resolution_duration_seconds",
		Help:    "Duration of asset resolution boundary calls",
		Buckets: prometheus.DefBuckets,
	})

	// ResolutionCacheHitsTotal tracks descriptor cache hits.
	ResolutionCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "excelsior_marketdata_cache_hits_total",
		Help: "Total number of asset descriptor cache hits",
	})

	// ResolutionCacheMissesTotal tracks descriptor cache misses.
	ResolutionCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "excelsior_marketdata_cache_misses_total",
		Help: "Total number of asset descriptor cache misses",
	})
)
