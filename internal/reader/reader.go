package reader

import (
	"context"

	"github.com/lmorrow/inkwell/internal/domain"
)

// RawEntry is one content file's front matter, decoded but not yet
// validated, plus the markdown body that follows it.
type RawEntry struct {
	Slug       string
	Collection domain.Collection
	Data       map[string]any
	Body       []byte
	Path       string
}

type Reader interface {
	Read() ([]RawEntry, error)
}

type ParallelResult struct {
	Entry RawEntry
	Err   error
}

type ParallelReader interface {
	ReadParallel(ctx context.Context, workerCount int) (<-chan ParallelResult, error)
}
