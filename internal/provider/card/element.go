package card

import (
	"fmt"
	"sync"

	"PaymentGatewayPractice/internal/domain/checkout"
)

// HostedElement holds the card reference the browser widget posted with the
// form until the adapter takes it.
type HostedElement struct {
	mu          sync.Mutex
	ref         string
	unavailable bool
}

func NewHostedElement() *HostedElement {
	return &HostedElement{}
}

// Mount replaces the current reference. An empty ref unmounts the element.
func (e *HostedElement) Mount(ref string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ref = ref
	e.unavailable = false
}

// MarkUnavailable records that the page could not load the provider's widget,
// so there is no card input to read a reference from.
func (e *HostedElement) MarkUnavailable() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ref = ""
	e.unavailable = true
}

func (e *HostedElement) Take() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ref, unavailable := e.ref, e.unavailable
	e.ref, e.unavailable = "", false

	switch {
	case unavailable:
		return "", fmt.Errorf("%w: card widget not loaded", checkout.ErrSDKNotReady)
	case ref == "":
		return "", &checkout.ValidationError{Field: FieldCard, Reason: "card details missing"}
	}
	return ref, nil
}
