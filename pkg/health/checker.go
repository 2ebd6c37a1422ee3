package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds a whole readiness probe.
const DefaultTimeout = 2 * time.Second

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Result is the outcome of a single check.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Checker reports whether one dependency of the site can serve payments.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}

// ProviderChecker reports whether a payment provider is configured well
// enough for its page to accept payments. Providers are called from the
// browser, so configuration is the only thing the server can verify.
type ProviderChecker struct {
	name  string
	ready func() bool
}

func NewProviderChecker(name string, ready func() bool) *ProviderChecker {
	return &ProviderChecker{name: name, ready: ready}
}

func (c *ProviderChecker) Name() string {
	return c.name
}

func (c *ProviderChecker) Check(_ context.Context) Result {
	if c.ready == nil || !c.ready() {
		return Result{Status: StatusDown, Message: "provider key not configured"}
	}
	return Result{Status: StatusUp}
}
