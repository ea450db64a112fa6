package factory

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchProbesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "qre",
			Subsystem: "factory",
			Name:      "search_probes_total",
			Help:      "Total number of pipelines the factory search tried to build",
		},
	)

	candidatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "qre",
			Subsystem: "factory",
			Name:      "candidates_total",
			Help:      "Total number of built pipelines meeting their target error rate",
		},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "qre",
			Subsystem: "factory",
			Name:      "cache_lookups_total",
			Help:      "Total number of factory search cache lookups",
		},
		// result: hit/miss
		[]string{"result"},
	)

	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "qre",
			Subsystem: "factory",
			Name:      "search_duration_seconds",
			Help:      "Duration of uncached factory searches",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
