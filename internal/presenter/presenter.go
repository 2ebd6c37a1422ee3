// Package presenter projects a submission status onto what the page shows
// next to the form.
package presenter

import "PaymentGatewayPractice/internal/domain/checkout"

type Kind string

const (
	KindNone         Kind = "none"
	KindSpinner      Kind = "spinner"
	KindConfirmation Kind = "confirmation"
	KindMessage      Kind = "message"
)

const (
	ProcessingText = "Processing..."
	SuccessTitle   = "Payment successful!"
	SuccessText    = "Thank you for your purchase."
	FailureTitle   = "Payment failed."
)

type Indicator struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
	// Busy disables the submit button.
	Busy bool `json:"busy"`
}

func Present(status checkout.Status) Indicator {
	switch status.Phase {
	case checkout.PhasePending:
		return Indicator{Kind: KindSpinner, Message: ProcessingText, Busy: true}
	case checkout.PhaseSuccess:
		return Indicator{Kind: KindConfirmation, Title: SuccessTitle, Message: SuccessText}
	case checkout.PhaseError:
		return Indicator{Kind: KindMessage, Title: FailureTitle, Message: status.Message}
	default:
		return Indicator{Kind: KindNone}
	}
}

// Visible reports whether the indicator renders anything.
func (i Indicator) Visible() bool {
	return i.Kind != KindNone
}
