package domain

// Collection names one content collection of the site.
type Collection string

const (
	CollectionBooks Collection = "books"
	CollectionNews  Collection = "news"
)

// BookStatus is the publication state of a book.
type BookStatus string

const (
	StatusPublished BookStatus = "published"
	StatusUpcoming  BookStatus = "upcoming"
	StatusDraft     BookStatus = "draft"
)

// NewsCategory classifies a news post.
type NewsCategory string

const (
	CategoryReleases NewsCategory = "releases"
	CategoryEvents   NewsCategory = "events"
	CategoryUpdates  NewsCategory = "updates"
)

// BuyLink points at an external retailer page for a book. The URL is
// always an absolute URL.
type BuyLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Downloadable is extra material offered with a book. Its URL may be a
// site-relative path, so no URL syntax is guaranteed.
type Downloadable struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Review is a pull quote shown on a book page.
type Review struct {
	Quote       string `json:"quote"`
	Attribution string `json:"attribution"`
}

// BookEntry is one validated record of the books collection. Entries
// are immutable after validation; one content file produces one entry
// per build pass.
type BookEntry struct {
	Slug            string         `json:"slug"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	CoverImage      string         `json:"coverImage"`
	PublishDate     Date           `json:"publishDate"`
	Status          BookStatus     `json:"status"`
	LongDescription string         `json:"longDescription,omitempty"`
	ISBN            string         `json:"isbn,omitempty"`
	Series          string         `json:"series,omitempty"`
	SeriesOrder     int            `json:"seriesOrder,omitempty"` // 0 means unset; valid values are > 0
	BuyLinks        []BuyLink      `json:"buyLinks"`              // never nil after validation
	Downloadables   []Downloadable `json:"downloadables,omitempty"`
	Reviews         []Review       `json:"reviews,omitempty"`
	Body            string         `json:"-"`
}

// NewsEntry is one validated record of the news collection.
type NewsEntry struct {
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	PublishDate Date         `json:"publishDate"`
	Category    NewsCategory `json:"category"`
	Draft       bool         `json:"draft"`
	Image       string       `json:"image,omitempty"`
	Body        string       `json:"-"`
}
