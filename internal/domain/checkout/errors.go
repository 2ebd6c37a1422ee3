package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrSDKNotReady         = errors.New("payment sdk not ready")
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	ErrUnknown             = errors.New("unknown payment error")
	ErrSubmissionInFlight  = errors.New("submission already in flight")
	ErrUnknownField        = errors.New("unknown field")
)

const (
	SDKNotReadyMessage         = "Payment provider is not ready yet. Please reload the page and try again."
	ProviderUnavailableMessage = "Payment provider is unreachable. Please try again."
	UnknownErrorMessage        = "An unknown error occurred"
)

type ValidationError struct {
	Field  Field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ProviderError carries a message the provider meant for the payer, e.g. a card decline.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Code == "" {
		return "provider: " + e.Message
	}
	return fmt.Sprintf("provider %s: %s", e.Code, e.Message)
}

// MessageFor returns the text shown to the payer for err.
func MessageFor(err error) string {
	var providerErr *ProviderError
	var validationErr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &providerErr) && providerErr.Message != "":
		return providerErr.Message
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Please check the %s field.", validationErr.Field)
	case errors.Is(err, ErrSDKNotReady):
		return SDKNotReadyMessage
	case errors.Is(err, ErrProviderUnavailable):
		return ProviderUnavailableMessage
	default:
		return UnknownErrorMessage
	}
}
