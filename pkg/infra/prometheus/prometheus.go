package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Classifier calls are expected in the low seconds; buckets stop at the
	// call timeout ceiling.
	classifierLatencyBuckets = []float64{
		25, 50, 100,
		250, 500, 1000,
		2500, 5000, 10000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flagwise_requests_total",
			Help: "Total number of moderation requests processed",
		},
		[]string{"endpoint", "status"},
	)

	ClassifierLatency = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flagwise_classifier_latency_ms",
			Help:    "Classifier call latency in milliseconds",
			Buckets: classifierLatencyBuckets,
		},
	)

	FallbackTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "flagwise_fallback_total",
			Help: "Number of requests served with fallback scores",
		},
	)
)

// Registry exposes the private registry for the metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}
