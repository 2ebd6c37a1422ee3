package popup

import (
	"context"
	"time"
)

//go:generate mockgen -source sdk.go -destination mock_sdk.go -package popup

// Checkout is the popup-checkout capability: it shows the provider's modal
// and returns once the provider's success handler fires.
type Checkout interface {
	Open(ctx context.Context, options Options) (Response, error)
}

// Options mirrors the provider's checkout configuration object.
type Options struct {
	Key         string  `json:"key"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Timeout     int     `json:"timeout,omitempty"`
	Prefill     Prefill `json:"prefill"`
	Theme       Theme   `json:"theme"`
}

type Prefill struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
}

type Theme struct {
	Color string `json:"color,omitempty"`
}

// Response is the payload the provider hands to the success handler.
type Response struct {
	PaymentID string `json:"razorpay_payment_id" form:"razorpay_payment_id" binding:"required"`
	OrderID   string `json:"razorpay_order_id,omitempty" form:"razorpay_order_id"`
	Signature string `json:"razorpay_signature,omitempty" form:"razorpay_signature"`
}

// Merchant is the static part of the checkout configuration.
type Merchant struct {
	Key         string
	Amount      int64
	Currency    string
	Name        string
	Description string
	ThemeColor  string
	Timeout     time.Duration
}
