// Package metrics exposes Prometheus instrumentation for the URL engine and
// the video registration path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NormalizeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videval_normalize_total",
		Help: "URL normalization attempts by outcome (ok or error kind).",
	}, []string{"outcome"})

	ValidationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videval_validation_errors_total",
		Help: "Validation errors surfaced to clients, by kind and severity.",
	}, []string{"kind", "severity"})

	VideosRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "videval_videos_registered_total",
		Help: "Videos successfully registered.",
	})

	MetadataFetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videval_metadata_fetch_errors_total",
		Help: "YouTube metadata fetch failures by mapped error kind.",
	}, []string{"kind"})

	RegisterDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "videval_register_duration_seconds",
		Help:    "Time from request receipt to registration response.",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	})
)
