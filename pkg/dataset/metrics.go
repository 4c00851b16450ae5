package dataset

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset parse metrics
	parseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gusto_dataset_parse_duration_seconds",
			Help:    "Duration of dataset parsing in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
)
