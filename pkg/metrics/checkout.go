package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CheckoutSubmissionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pgp",
			Subsystem: "checkout",
			Name:      "submission_duration_seconds",
			Help:      "Time from submit until the payment provider resolved, in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 300, 900},
		},
		[]string{"provider", "outcome"},
	)

	CheckoutSubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pgp",
			Subsystem: "checkout",
			Name:      "submissions_total",
			Help:      "Total number of payment submissions resolved by a provider",
		},
		[]string{"provider", "outcome"},
	)

	CheckoutSessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pgp",
			Subsystem: "checkout",
			Name:      "sessions_active",
			Help:      "Number of browser sessions holding checkout form state",
		},
	)
)

func init() {
	Registry.MustRegister(CheckoutSubmissionDuration, CheckoutSubmissionsTotal, CheckoutSessionsActive)
}
