package card

import (
	"context"
	"fmt"

	"PaymentGatewayPractice/internal/domain/checkout"
)

const ProviderName = "stripe"

// FieldCard names the hosted card input in validation errors.
const FieldCard checkout.Field = "card"

// Adapter is the card-tokenization variant: it turns the hosted card element
// plus billing details into a provider payment method token.
type Adapter struct {
	sdk     SDK
	element Element
}

func NewAdapter(sdk SDK, element Element) *Adapter {
	return &Adapter{sdk: sdk, element: element}
}

func (a *Adapter) Name() string {
	return ProviderName
}

func (a *Adapter) Submit(ctx context.Context, details checkout.BillingDetails) checkout.Outcome {
	if a.sdk == nil || a.element == nil {
		return checkout.FailureFrom(checkout.ErrSDKNotReady)
	}

	ref, err := a.element.Take()
	if err != nil {
		return checkout.FailureFrom(fmt.Errorf("take card reference: %w", err))
	}

	pm, err := a.sdk.CreatePaymentMethod(ctx, PaymentMethodParams{
		CardToken: ref,
		Billing:   details,
	})
	if err != nil {
		return checkout.FailureFrom(fmt.Errorf("create payment method: %w", err))
	}
	if pm.ID == "" {
		return checkout.FailureFrom(fmt.Errorf("create payment method: %w: empty id", checkout.ErrUnknown))
	}

	return checkout.Token(pm.ID)
}
