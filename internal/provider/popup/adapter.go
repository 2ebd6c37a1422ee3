package popup

import (
	"context"
	"fmt"

	"PaymentGatewayPractice/internal/domain/checkout"
)

const ProviderName = "razorpay"

// Adapter is the popup-checkout variant: billing details only prefill the
// provider's modal, which collects the payment itself.
type Adapter struct {
	checkout Checkout
	merchant Merchant
}

func NewAdapter(c Checkout, merchant Merchant) *Adapter {
	return &Adapter{checkout: c, merchant: merchant}
}

func (a *Adapter) Name() string {
	return ProviderName
}

func (a *Adapter) Submit(ctx context.Context, details checkout.BillingDetails) checkout.Outcome {
	if a.checkout == nil || a.merchant.Key == "" {
		return checkout.FailureFrom(checkout.ErrSDKNotReady)
	}

	resp, err := a.checkout.Open(ctx, a.Options(details))
	if err != nil {
		return checkout.FailureFrom(fmt.Errorf("open checkout: %w", err))
	}
	if resp.PaymentID == "" {
		return checkout.FailureFrom(fmt.Errorf("open checkout: %w: empty payment id", checkout.ErrUnknown))
	}

	return checkout.Token(resp.PaymentID)
}

func (a *Adapter) Options(details checkout.BillingDetails) Options {
	return Options{
		Key:         a.merchant.Key,
		Amount:      a.merchant.Amount,
		Currency:    a.merchant.Currency,
		Name:        a.merchant.Name,
		Description: a.merchant.Description,
		Timeout:     int(a.merchant.Timeout.Seconds()),
		Prefill: Prefill{
			Name:    details.Name,
			Email:   details.Email,
			Contact: details.Contact,
		},
		Theme: Theme{Color: a.merchant.ThemeColor},
	}
}
