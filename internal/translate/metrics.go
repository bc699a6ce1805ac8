package translate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	translationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polyglot_translation_requests_total",
			Help: "Total number of translation requests per provider",
		},
		[]string{"provider", "status"},
	)

	translationRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "polyglot_translation_request_duration_seconds",
			Help:    "Duration of translation provider calls in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
		},
		[]string{"provider"},
	)
)

// observeRequest records the outcome and latency of one provider call.
func observeRequest(provider string, ok bool, elapsed time.Duration) {
	status := "success"
	if !ok {
		status = "error"
	}
	translationRequestsTotal.WithLabelValues(provider, status).Inc()
	translationRequestDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}
