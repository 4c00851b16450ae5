package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation generation metrics
	recommendBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gusto_recommend_build_duration_seconds",
			Help:    "Duration of recommendation generation in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
	recommendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gusto_recommend_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"status"},
	)
)
