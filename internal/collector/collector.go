package collector

import "context"

// Result carries one collected value or the error that produced it.
// Slug identifies the source file either way.
type Result[T any] struct {
	Slug  string
	Value T
	Err   error
}

type Collector[T any] interface {
	Collect(ctx context.Context) (<-chan Result[T], error)
}
