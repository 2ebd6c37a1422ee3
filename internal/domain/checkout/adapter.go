package checkout

import "context"

//go:generate mockgen -source adapter.go -destination mock_adapter.go -package checkout

// Adapter hides a payment provider behind a single call. Implementations
// never return errors: every failure is folded into the Outcome at the
// adapter boundary. Only one call per form is in flight at a time, which the
// form guarantees through its Pending status.
type Adapter interface {
	Name() string
	Submit(ctx context.Context, details BillingDetails) Outcome
}
