package checkout

import (
	"context"
	"sync"
)

type FormOption func(*Form)

func WithLayout(layout Layout) FormOption {
	return func(f *Form) {
		f.layout = layout
	}
}

// Form owns the billing details and submission status of one checkout page.
// All state changes go through the mutex; the provider call itself runs
// outside it so the page can keep rendering the Pending status.
type Form struct {
	adapter Adapter
	layout  Layout

	mu      sync.Mutex
	details BillingDetails
	status  Status
}

func NewForm(adapter Adapter, opts ...FormOption) *Form {
	f := &Form{
		adapter: adapter,
		layout:  LayoutFull,
		status:  Idle(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Provider() string {
	return f.adapter.Name()
}

func (f *Form) Layout() Layout {
	return f.layout
}

func (f *Form) Details() BillingDetails {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.details
}

func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Loading reports whether a submission is in flight.
func (f *Form) Loading() bool {
	return f.Status().IsPending()
}

// FieldValue is one posted field of a multi-field update.
type FieldValue struct {
	Field Field
	Value string
}

func (f *Form) Update(field Field, value string) error {
	return f.Apply(FieldValue{Field: field, Value: value})
}

// Apply writes all values in order or none of them: the first rejected value
// leaves the details exactly as they were.
func (f *Form) Apply(values ...FieldValue) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status.IsPending() {
		return ErrSubmissionInFlight
	}

	next := f.details
	for _, v := range values {
		var err error
		if next, err = next.With(v.Field, v.Value); err != nil {
			return err
		}
	}
	f.details = next
	return nil
}

// Submit validates the form, moves it to Pending and blocks until the adapter
// resolves. A submit while another one is pending returns
// ErrSubmissionInFlight and changes nothing.
func (f *Form) Submit(ctx context.Context) (Status, error) {
	snapshot, err := f.begin()
	if err != nil {
		return f.Status(), err
	}
	return f.resolve(f.adapter.Submit(ctx, snapshot)), nil
}

// SubmitAsync performs the same checks as Submit but leaves the adapter call
// running in the background. The caller observes the result through Status.
func (f *Form) SubmitAsync(ctx context.Context) error {
	snapshot, err := f.begin()
	if err != nil {
		return err
	}
	go func() {
		f.resolve(f.adapter.Submit(ctx, snapshot))
	}()
	return nil
}

func (f *Form) begin() (BillingDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status.IsPending() {
		return BillingDetails{}, ErrSubmissionInFlight
	}
	if err := f.layout.Validate(f.details); err != nil {
		return BillingDetails{}, err
	}

	f.status = Pending()
	return f.details, nil
}

func (f *Form) resolve(outcome Outcome) Status {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.status = outcome.Status()
	if outcome.Succeeded() {
		f.details = BillingDetails{}
	}
	return f.status
}
