package health

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Registry aggregates the provider checks behind /health/ready.
type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// CheckResult is a Result labelled with the checker that produced it.
type CheckResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// CheckAll runs every checker concurrently. Results keep registration
// order; the overall status is down if any single check is down.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	if len(r.checkers) == 0 {
		return ReadinessResponse{Status: StatusUp}
	}

	results := make([]CheckResult, len(r.checkers))
	var g errgroup.Group
	for i, checker := range r.checkers {
		g.Go(func() error {
			res := checker.Check(ctx)
			results[i] = CheckResult{Name: checker.Name(), Status: res.Status, Message: res.Message}
			return nil
		})
	}
	_ = g.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status == StatusDown {
			overall = StatusDown
			break
		}
	}

	return ReadinessResponse{Status: overall, Checks: results}
}
