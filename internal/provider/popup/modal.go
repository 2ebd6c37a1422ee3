package popup

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"PaymentGatewayPractice/internal/domain/checkout"

	"github.com/google/uuid"
)

var (
	ErrModalBusy        = errors.New("checkout modal already open")
	ErrNoOpenCheckout   = errors.New("no open checkout")
	ErrCheckoutTimedOut = fmt.Errorf("%w: checkout timed out", checkout.ErrProviderUnavailable)
)

// DefaultCheckoutTimeout bounds Open when the options carry no provider timeout.
const DefaultCheckoutTimeout = 15 * time.Minute

// Modal is the server side of one browser's checkout popup. Open publishes the
// options for the page to hand to the provider script and waits for the
// script's success handler to post the result back through Complete.
type Modal struct {
	grace    time.Duration
	fallback time.Duration

	mu      sync.Mutex
	current *openCheckout
}

type openCheckout struct {
	id      string
	options Options
	done    chan result
}

type result struct {
	resp Response
	err  error
}

// NewModal returns a modal that gives up grace after the provider's own
// timeout has closed the popup.
func NewModal(grace time.Duration) *Modal {
	return &Modal{grace: grace, fallback: DefaultCheckoutTimeout}
}

func (m *Modal) Open(ctx context.Context, options Options) (Response, error) {
	oc := &openCheckout{
		id:      uuid.NewString(),
		options: options,
		done:    make(chan result, 1),
	}

	m.mu.Lock()
	if m.current != nil {
		m.mu.Unlock()
		return Response{}, ErrModalBusy
	}
	m.current = oc
	m.mu.Unlock()

	defer m.close(oc)

	wait := m.fallback
	if options.Timeout > 0 {
		wait = time.Duration(options.Timeout) * time.Second
	}
	timer := time.NewTimer(wait + m.grace)
	defer timer.Stop()

	select {
	case res := <-oc.done:
		return res.resp, res.err
	case <-timer.C:
		return Response{}, ErrCheckoutTimedOut
	case <-ctx.Done():
		return Response{}, fmt.Errorf("%w: %w", checkout.ErrProviderUnavailable, ctx.Err())
	}
}

// Current returns the checkout the page should display, if any.
func (m *Modal) Current() (string, Options, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return "", Options{}, false
	}
	return m.current.id, m.current.options, true
}

// Complete delivers the success handler payload for checkout id.
func (m *Modal) Complete(id string, resp Response) error {
	return m.deliver(id, result{resp: resp})
}

// Fail resolves checkout id with err, e.g. when the page could not load the
// provider script and the popup will never open.
func (m *Modal) Fail(id string, err error) error {
	return m.deliver(id, result{err: err})
}

func (m *Modal) deliver(id string, res result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || m.current.id != id {
		return ErrNoOpenCheckout
	}

	select {
	case m.current.done <- res:
	default:
		return ErrNoOpenCheckout
	}
	m.current = nil
	return nil
}

func (m *Modal) close(oc *openCheckout) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == oc {
		m.current = nil
	}
}
