package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// FuncHealthChecker adapts a predicate, e.g. "the catalog finished
// loading", into a HealthChecker.
type FuncHealthChecker func(ctx context.Context) bool

func (f FuncHealthChecker) Healthy(ctx context.Context) bool {
	return f(ctx)
}
