package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "squarewise_generate_total",
		Help: "Puzzle generation requests by difficulty and outcome.",
	}, []string{"difficulty", "outcome"})

	generateSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "squarewise_generate_duration_seconds",
		Help:    "Wall time spent generating one puzzle.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	})
)
