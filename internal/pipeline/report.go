package pipeline

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lmorrow/inkwell/internal/domain"
	"github.com/lmorrow/inkwell/internal/schema"
)

// EntryFailure records why one content file was rejected. Violations
// is set for schema failures; Err covers everything else (unreadable
// file, broken front matter).
type EntryFailure struct {
	Collection domain.Collection  `json:"collection"`
	Slug       string             `json:"slug"`
	Violations []schema.Violation `json:"violations,omitempty"`
	Err        string             `json:"error,omitempty"`
}

// Report summarizes one build pass over the content tree.
type Report struct {
	RunID     uuid.UUID      `json:"runId"`
	StartedAt time.Time      `json:"startedAt"`
	Duration  time.Duration  `json:"duration"`
	Processed int            `json:"processed"`
	Failed    int            `json:"failed"`
	Failures  []EntryFailure `json:"failures,omitempty"`
}

func newReport() *Report {
	return &Report{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
	}
}

// OK reports whether every record validated.
func (r *Report) OK() bool {
	return r.Failed == 0
}

func (r *Report) addFailure(c domain.Collection, slug string, err error) {
	r.Failed++

	f := EntryFailure{Collection: c, Slug: slug}
	var vf *schema.Failure
	if errors.As(err, &vf) {
		f.Violations = vf.Violations
	} else {
		f.Err = err.Error()
	}
	r.Failures = append(r.Failures, f)
}

func (r *Report) finish() {
	r.Duration = time.Since(r.StartedAt)
	sort.Slice(r.Failures, func(i, j int) bool {
		if r.Failures[i].Collection != r.Failures[j].Collection {
			return r.Failures[i].Collection < r.Failures[j].Collection
		}
		return r.Failures[i].Slug < r.Failures[j].Slug
	})
}
