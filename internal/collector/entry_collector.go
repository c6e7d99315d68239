package collector

import (
	"context"
	"log/slog"

	"github.com/lmorrow/inkwell/internal/reader"
)

const defaultWorkers = 8

// ValidateFunc turns one raw front-matter record into a typed entry.
type ValidateFunc[T any] func(reader.RawEntry) (T, error)

// EntryCollector reads a collection's files in parallel and validates
// each record as it arrives. Validation failures are reported per
// entry, they never stop the collection.
type EntryCollector[T any] struct {
	Reader   reader.ParallelReader
	Validate ValidateFunc[T]
	Workers  int
}

func NewEntryCollector[T any](r reader.ParallelReader, validate ValidateFunc[T]) *EntryCollector[T] {
	return &EntryCollector[T]{
		Reader:   r,
		Validate: validate,
		Workers:  defaultWorkers,
	}
}

func (c *EntryCollector[T]) Collect(ctx context.Context) (<-chan Result[T], error) {
	raw, err := c.Reader.ReadParallel(ctx, c.Workers)
	if err != nil {
		return nil, err
	}

	out := make(chan Result[T])
	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case res, ok := <-raw:
				if !ok {
					return
				}
				if res.Err != nil {
					if !send(ctx, out, Result[T]{Slug: res.Entry.Slug, Err: res.Err}) {
						return
					}
					continue
				}

				v, err := c.Validate(res.Entry)
				if err != nil {
					slog.Error("entry failed validation", "slug", res.Entry.Slug, "error", err)
					if !send(ctx, out, Result[T]{Slug: res.Entry.Slug, Err: err}) {
						return
					}
					continue
				}

				if !send(ctx, out, Result[T]{Slug: res.Entry.Slug, Value: v}) {
					return
				}
			}
		}
	}()

	return out, nil
}

// send delivers one result unless the context dies first. A consumer
// that stops reading on cancellation must not strand the collector on
// a blocked send.
func send[T any](ctx context.Context, out chan<- Result[T], r Result[T]) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- r:
		return true
	}
}
