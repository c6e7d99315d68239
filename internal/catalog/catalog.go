// Package catalog holds the validated content of one build pass in
// memory for listing pages, detail pages and the preview API.
package catalog

import (
	"bytes"
	"sort"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/lmorrow/inkwell/internal/domain"
)

type Catalog struct {
	mu    sync.RWMutex
	books map[string]domain.BookEntry
	news  map[string]domain.NewsEntry
	md    goldmark.Markdown
}

func New() *Catalog {
	return &Catalog{
		books: make(map[string]domain.BookEntry),
		news:  make(map[string]domain.NewsEntry),
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (c *Catalog) AddBook(b domain.BookEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.books[b.Slug] = b
}

func (c *Catalog) AddNews(n domain.NewsEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.news[n.Slug] = n
}

// Books lists every book, newest publish date first. Ties break on
// title so listing order is stable across builds.
func (c *Catalog) Books() []domain.BookEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.BookEntry, 0, len(c.books))
	for _, b := range c.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PublishDate != out[j].PublishDate {
			return out[j].PublishDate.Before(out[i].PublishDate)
		}
		return out[i].Title < out[j].Title
	})
	return out
}

func (c *Catalog) Book(slug string) (domain.BookEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.books[slug]
	return b, ok
}

// BooksInSeries lists the books whose series matches exactly, ordered
// by seriesOrder ascending. Books without an order come last, by
// publish date. The schema does not require seriesOrder alongside
// series, so the unset case has to render stably too.
func (c *Catalog) BooksInSeries(series string) []domain.BookEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.BookEntry
	for _, b := range c.books {
		if b.Series == series {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := out[i].SeriesOrder, out[j].SeriesOrder
		switch {
		case oi > 0 && oj > 0 && oi != oj:
			return oi < oj
		case oi > 0 && oj == 0:
			return true
		case oi == 0 && oj > 0:
			return false
		default:
			return out[i].PublishDate.Before(out[j].PublishDate)
		}
	})
	return out
}

// News lists news posts, newest first. Drafts are skipped unless
// includeDrafts is set.
func (c *Catalog) News(includeDrafts bool) []domain.NewsEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.NewsEntry, 0, len(c.news))
	for _, n := range c.news {
		if n.Draft && !includeDrafts {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PublishDate != out[j].PublishDate {
			return out[j].PublishDate.Before(out[i].PublishDate)
		}
		return out[i].Title < out[j].Title
	})
	return out
}

func (c *Catalog) NewsByCategory(cat domain.NewsCategory, includeDrafts bool) []domain.NewsEntry {
	all := c.News(includeDrafts)
	out := make([]domain.NewsEntry, 0, len(all))
	for _, n := range all {
		if n.Category == cat {
			out = append(out, n)
		}
	}
	return out
}

func (c *Catalog) NewsItem(slug string) (domain.NewsEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.news[slug]
	return n, ok
}

// RenderBody converts a markdown body to HTML for detail reads.
func (c *Catalog) RenderBody(body string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (c *Catalog) Counts() (books, news int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books), len(c.news)
}
