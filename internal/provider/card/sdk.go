package card

import (
	"context"

	"PaymentGatewayPractice/internal/domain/checkout"
)

//go:generate mockgen -source sdk.go -destination mock_sdk.go -package card

// SDK is the card-tokenization capability of the provider.
type SDK interface {
	CreatePaymentMethod(ctx context.Context, params PaymentMethodParams) (PaymentMethod, error)
}

// Element is the hosted card input. Raw card data stays inside the provider's
// widget; the application only ever receives an opaque card reference.
type Element interface {
	// Take returns the reference produced by the widget and consumes it,
	// since provider card tokens are single-use. It fails with
	// checkout.ErrSDKNotReady when the widget never loaded and with a
	// *checkout.ValidationError when no card was entered.
	Take() (string, error)
}

type PaymentMethodParams struct {
	CardToken string
	Billing   checkout.BillingDetails
}

type PaymentMethod struct {
	ID    string
	Brand string
	Last4 string
}
