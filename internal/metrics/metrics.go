package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "librarium_ops_total",
		Help: "Total number of collection operations",
	}, []string{"op", "status"})

	OpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "librarium_op_duration_seconds",
		Help:    "Duration of collection operations in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
)
