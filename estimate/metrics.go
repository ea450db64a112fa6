package estimate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	iterationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "qre",
			Subsystem: "estimate",
			Name:      "iterations_total",
			Help:      "Total number of cycle-count iterations of unrestricted estimates",
		},
	)

	estimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "qre",
			Subsystem: "estimate",
			Name:      "estimates_total",
			Help:      "Total number of estimates",
		},
		// mode: unrestricted/max_duration/max_qubits, status: success/error
		[]string{"mode", "status"},
	)

	estimateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "qre",
			Subsystem: "estimate",
			Name:      "duration_seconds",
			Help:      "Duration of estimates",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"mode"},
	)
)
