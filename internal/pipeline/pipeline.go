// Package pipeline runs one build pass: read every content file,
// validate each record, and load the valid ones into the catalog.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/lmorrow/inkwell/internal/catalog"
	"github.com/lmorrow/inkwell/internal/collector"
	"github.com/lmorrow/inkwell/internal/domain"
	"github.com/lmorrow/inkwell/internal/reader"
	"github.com/lmorrow/inkwell/internal/schema"
)

// BuildPipeline validates both collections of a content tree. A failed
// record is terminal for that record only; the pass itself always runs
// to completion so the report covers every file.
type BuildPipeline struct {
	books collector.Collector[domain.BookEntry]
	news  collector.Collector[domain.NewsEntry]
	cat   *catalog.Catalog
	name  string
}

type Option func(*BuildPipeline)

func WithName(name string) Option {
	return func(p *BuildPipeline) { p.name = name }
}

func New(books collector.Collector[domain.BookEntry], news collector.Collector[domain.NewsEntry], cat *catalog.Catalog, opts ...Option) *BuildPipeline {
	p := &BuildPipeline{
		books: books,
		news:  news,
		cat:   cat,
		name:  "content-build",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewForDir wires a pipeline over the conventional content layout:
// <dir>/books/*.md and <dir>/news/*.md.
func NewForDir(dir string, cat *catalog.Catalog, opts ...Option) *BuildPipeline {
	books := collector.NewEntryCollector(
		reader.NewDirReader(filepath.Join(dir, "books"), domain.CollectionBooks),
		ValidateBookEntry,
	)
	news := collector.NewEntryCollector(
		reader.NewDirReader(filepath.Join(dir, "news"), domain.CollectionNews),
		ValidateNewsEntry,
	)
	return New(books, news, cat, opts...)
}

// ValidateBookEntry validates one raw books record and attaches the
// loader-side fields the schema never sees.
func ValidateBookEntry(re reader.RawEntry) (domain.BookEntry, error) {
	b, err := schema.ValidateBook(re.Data)
	if err != nil {
		return domain.BookEntry{}, err
	}
	b.Slug = re.Slug
	b.Body = string(re.Body)
	return b, nil
}

func ValidateNewsEntry(re reader.RawEntry) (domain.NewsEntry, error) {
	n, err := schema.ValidateNews(re.Data)
	if err != nil {
		return domain.NewsEntry{}, err
	}
	n.Slug = re.Slug
	n.Body = string(re.Body)
	return n, nil
}

// Run executes the pass and returns its report. The returned error is
// only non-nil when the pass itself could not run (unreadable content
// dir, cancelled context), never for individual record failures.
func (p *BuildPipeline) Run(ctx context.Context) (*Report, error) {
	report := newReport()
	slog.Info("starting content build",
		"pipeline", p.name,
		"runId", report.RunID,
	)

	if err := drain(ctx, p.books, domain.CollectionBooks, report, p.cat.AddBook); err != nil {
		return nil, err
	}
	if err := drain(ctx, p.news, domain.CollectionNews, report, p.cat.AddNews); err != nil {
		return nil, err
	}

	report.finish()
	slog.Info("content build finished",
		"pipeline", p.name,
		"runId", report.RunID,
		"processed", report.Processed,
		"failed", report.Failed,
		"duration", report.Duration,
	)
	return report, nil
}

func drain[T any](ctx context.Context, c collector.Collector[T], col domain.Collection, report *Report, add func(T)) error {
	results, err := c.Collect(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				return nil
			}
			if res.Err != nil {
				report.addFailure(col, res.Slug, res.Err)
				continue
			}
			add(res.Value)
			report.Processed++
		}
	}
}
