// Package schema validates raw front-matter records against the site's
// content collections and normalizes them into typed entries.
//
// Each collection is described by a table of tagged field descriptors
// interpreted by one generic walk. Shape checking and defaulting are
// separate steps: the walk only collects violations and coerces values,
// defaults are applied afterwards and only to valid records.
package schema

import "github.com/lmorrow/inkwell/internal/domain"

// Kind tags the shape a field's value must have.
type Kind int

const (
	Text Kind = iota
	Bool
	Enum
	Date
	PositiveInt
	// URLStrict requires an absolute URL with scheme and host. Lenient
	// URL fields are just Text.
	URLStrict
	List
)

// Field describes one front-matter key.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	NonEmpty bool       // Text only: reject the empty string
	Values   []string   // Enum only: the closed value set
	Elem     []Field    // List only: sub-schema of each element
	Default  func() any // applied when an optional field is absent
}

var bookFields = []Field{
	{Name: "title", Kind: Text, Required: true, NonEmpty: true},
	{Name: "description", Kind: Text, Required: true, NonEmpty: true},
	{Name: "coverImage", Kind: Text, Required: true, NonEmpty: true},
	{Name: "publishDate", Kind: Date, Required: true},
	{Name: "status", Kind: Enum, Required: true, Values: []string{
		string(domain.StatusPublished),
		string(domain.StatusUpcoming),
		string(domain.StatusDraft),
	}},
	{Name: "longDescription", Kind: Text},
	{Name: "isbn", Kind: Text},
	// series and seriesOrder are deliberately independent: either may
	// appear without the other.
	{Name: "series", Kind: Text},
	{Name: "seriesOrder", Kind: PositiveInt},
	{
		Name:    "buyLinks",
		Kind:    List,
		Default: func() any { return []map[string]any{} },
		Elem: []Field{
			{Name: "name", Kind: Text, Required: true},
			{Name: "url", Kind: URLStrict, Required: true},
		},
	},
	{
		Name: "downloadables",
		Kind: List,
		Elem: []Field{
			{Name: "title", Kind: Text, Required: true},
			{Name: "description", Kind: Text, Required: true},
			// Plain text, not URLStrict: downloadables may point at
			// site-relative paths.
			{Name: "url", Kind: Text, Required: true},
		},
	},
	{
		Name: "reviews",
		Kind: List,
		Elem: []Field{
			{Name: "quote", Kind: Text, Required: true},
			{Name: "attribution", Kind: Text, Required: true},
		},
	},
}

var newsFields = []Field{
	{Name: "title", Kind: Text, Required: true, NonEmpty: true},
	{Name: "description", Kind: Text, Required: true, NonEmpty: true},
	{Name: "publishDate", Kind: Date, Required: true},
	{Name: "category", Kind: Enum, Required: true, Values: []string{
		string(domain.CategoryReleases),
		string(domain.CategoryEvents),
		string(domain.CategoryUpdates),
	}},
	{Name: "draft", Kind: Bool, Default: func() any { return false }},
	{Name: "image", Kind: Text},
}

func fieldsFor(c domain.Collection) ([]Field, bool) {
	switch c {
	case domain.CollectionBooks:
		return bookFields, true
	case domain.CollectionNews:
		return newsFields, true
	default:
		return nil, false
	}
}
