// Package provider holds the payment provider adapters and the decorator
// that records what they resolve to.
package provider

import (
	"context"
	"log/slog"
	"time"

	"PaymentGatewayPractice/internal/domain/checkout"
	"PaymentGatewayPractice/pkg/metrics"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Instrumented logs and counts every resolution of the wrapped adapter.
type Instrumented struct {
	next checkout.Adapter
	log  *slog.Logger
}

func Instrument(next checkout.Adapter, l *slog.Logger) *Instrumented {
	if l == nil {
		l = slog.Default()
	}
	return &Instrumented{next: next, log: l}
}

func (a *Instrumented) Name() string {
	return a.next.Name()
}

func (a *Instrumented) Submit(ctx context.Context, details checkout.BillingDetails) checkout.Outcome {
	start := time.Now()
	outcome := a.next.Submit(ctx, details)

	result := outcomeSuccess
	if !outcome.Succeeded() {
		result = outcomeFailure
	}
	metrics.CheckoutSubmissionDuration.WithLabelValues(a.Name(), result).Observe(time.Since(start).Seconds())
	metrics.CheckoutSubmissionsTotal.WithLabelValues(a.Name(), result).Inc()

	if outcome.Succeeded() {
		a.log.InfoContext(ctx, "Payment submitted", "provider", a.Name(), "token", outcome.Token())
	} else {
		a.log.WarnContext(ctx, "Payment failed", "provider", a.Name(), "message", outcome.Message(), "error", outcome.Err())
	}
	return outcome
}
