package metrics

import "github.com/prometheus/client_golang/prometheus"

// httpLabels splits request metrics by payment provider so the card and
// popup pages can be compared directly. Routes outside a provider page carry
// an empty provider label.
var httpLabels = []string{"handler", "method", "status_code", "provider"}

var (
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pgp",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds, by route and payment provider",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		httpLabels,
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pgp",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests, by route and payment provider",
		},
		httpLabels,
	)
)

func init() {
	Registry.MustRegister(HTTPRequestDuration, HTTPRequestsTotal)
}
