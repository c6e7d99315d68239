package schema

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmorrow/inkwell/internal/domain"
)

func minimalBook() map[string]any {
	return map[string]any{
		"title":       "T",
		"description": "D",
		"coverImage":  "/c.webp",
		"publishDate": "2025-06-15",
		"status":      "upcoming",
	}
}

func minimalNews() map[string]any {
	return map[string]any{
		"title":       "T",
		"description": "D",
		"publishDate": "2025-01-15",
		"category":    "updates",
	}
}

func requireFailure(t *testing.T, err error) *Failure {
	t.Helper()
	var f *Failure
	require.ErrorAs(t, err, &f)
	require.NotEmpty(t, f.Violations)
	return f
}

func violationPaths(f *Failure) []string {
	paths := make([]string, len(f.Violations))
	for i, v := range f.Violations {
		paths[i] = v.Path
	}
	return paths
}

func TestValidateBook(t *testing.T) {
	t.Run("minimal record succeeds with empty buy links", func(t *testing.T) {
		b, err := ValidateBook(minimalBook())
		require.NoError(t, err)

		assert.Equal(t, "T", b.Title)
		assert.Equal(t, domain.StatusUpcoming, b.Status)
		require.NotNil(t, b.BuyLinks)
		assert.Empty(t, b.BuyLinks)
		assert.Nil(t, b.Downloadables)
		assert.Nil(t, b.Reviews)
	})

	t.Run("publish date keeps the literal year month day", func(t *testing.T) {
		b, err := ValidateBook(minimalBook())
		require.NoError(t, err)

		assert.Equal(t, 2025, b.PublishDate.Year)
		assert.Equal(t, time.June, b.PublishDate.Month)
		assert.Equal(t, 15, b.PublishDate.Day)
	})

	t.Run("full record round trips", func(t *testing.T) {
		raw := minimalBook()
		raw["longDescription"] = "long"
		raw["isbn"] = "978-1"
		raw["series"] = "Saga"
		raw["seriesOrder"] = 2
		raw["buyLinks"] = []any{
			map[string]any{"name": "Amazon", "url": "https://amazon.com/dp/1"},
			map[string]any{"name": "Kobo", "url": "https://kobo.com/b/1"},
		}
		raw["downloadables"] = []any{
			map[string]any{"title": "Sample", "description": "First chapter", "url": "/downloads/sample.pdf"},
		}
		raw["reviews"] = []any{
			map[string]any{"quote": "Great", "attribution": "Reviewer"},
		}

		b, err := ValidateBook(raw)
		require.NoError(t, err)

		assert.Equal(t, "Saga", b.Series)
		assert.Equal(t, 2, b.SeriesOrder)
		require.Len(t, b.BuyLinks, 2)
		assert.Equal(t, domain.BuyLink{Name: "Amazon", URL: "https://amazon.com/dp/1"}, b.BuyLinks[0])
		assert.Equal(t, domain.BuyLink{Name: "Kobo", URL: "https://kobo.com/b/1"}, b.BuyLinks[1])
		require.Len(t, b.Downloadables, 1)
		assert.Equal(t, "/downloads/sample.pdf", b.Downloadables[0].URL)
		require.Len(t, b.Reviews, 1)
	})

	t.Run("status outside the closed set fails on status", func(t *testing.T) {
		raw := minimalBook()
		raw["status"] = "invalid"

		_, err := ValidateBook(raw)
		f := requireFailure(t, err)

		require.Len(t, f.Violations, 1)
		assert.Equal(t, "status", f.Violations[0].Path)
		assert.Equal(t, CodeEnumViolation, f.Violations[0].Code)
	})

	t.Run("every missing required field is reported", func(t *testing.T) {
		_, err := ValidateBook(map[string]any{})
		f := requireFailure(t, err)

		paths := violationPaths(f)
		assert.ElementsMatch(t, []string{"title", "description", "coverImage", "publishDate", "status"}, paths)
		for _, v := range f.Violations {
			assert.Equal(t, CodeMissingRequired, v.Code)
		}
	})

	t.Run("collects every violation in one pass", func(t *testing.T) {
		raw := minimalBook()
		raw["status"] = "unknown"
		raw["seriesOrder"] = -1
		raw["buyLinks"] = []any{
			map[string]any{"name": "Amazon", "url": "not-a-url"},
		}

		_, err := ValidateBook(raw)
		f := requireFailure(t, err)

		assert.ElementsMatch(t, []string{"status", "seriesOrder", "buyLinks[0].url"}, violationPaths(f))
	})

	t.Run("empty required text is rejected", func(t *testing.T) {
		raw := minimalBook()
		raw["title"] = ""

		_, err := ValidateBook(raw)
		f := requireFailure(t, err)

		require.Len(t, f.Violations, 1)
		assert.Equal(t, "title", f.Violations[0].Path)
		assert.Equal(t, CodeTypeMismatch, f.Violations[0].Code)
	})

	t.Run("wrong primitive types are reported per field", func(t *testing.T) {
		raw := minimalBook()
		raw["title"] = 42
		raw["publishDate"] = 20250615

		_, err := ValidateBook(raw)
		f := requireFailure(t, err)

		assert.ElementsMatch(t, []string{"title", "publishDate"}, violationPaths(f))
		for _, v := range f.Violations {
			assert.Equal(t, CodeTypeMismatch, v.Code)
		}
	})

	t.Run("unquoted yaml date arrives as time.Time and is accepted", func(t *testing.T) {
		raw := minimalBook()
		raw["publishDate"] = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

		b, err := ValidateBook(raw)
		require.NoError(t, err)
		assert.Equal(t, domain.Date{Year: 2025, Month: time.June, Day: 15}, b.PublishDate)
	})

	t.Run("time.Time keeps its own calendar digits", func(t *testing.T) {
		loc := time.FixedZone("plus10", 10*60*60)
		raw := minimalBook()
		raw["publishDate"] = time.Date(2025, time.June, 15, 23, 30, 0, 0, loc)

		b, err := ValidateBook(raw)
		require.NoError(t, err)
		assert.Equal(t, 15, b.PublishDate.Day, "no timezone shifting beyond the parsed value")
	})

	t.Run("unparseable publish date fails", func(t *testing.T) {
		raw := minimalBook()
		raw["publishDate"] = "June 15th, 2025"

		_, err := ValidateBook(raw)
		f := requireFailure(t, err)

		require.Len(t, f.Violations, 1)
		assert.Equal(t, "publishDate", f.Violations[0].Path)
		assert.Equal(t, CodeDateParse, f.Violations[0].Code)
	})
}

func TestValidateBook_SeriesOrder(t *testing.T) {
	cases := []struct {
		name  string
		value any
		code  Code
	}{
		{name: "zero", value: 0, code: CodeNumberConstraint},
		{name: "negative", value: -3, code: CodeNumberConstraint},
		{name: "fractional", value: 2.5, code: CodeNumberConstraint},
		{name: "string", value: "2", code: CodeTypeMismatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := minimalBook()
			raw["seriesOrder"] = tc.value

			_, err := ValidateBook(raw)
			f := requireFailure(t, err)

			require.Len(t, f.Violations, 1)
			assert.Equal(t, "seriesOrder", f.Violations[0].Path)
			assert.Equal(t, tc.code, f.Violations[0].Code)
		})
	}

	t.Run("integral float is accepted", func(t *testing.T) {
		raw := minimalBook()
		raw["seriesOrder"] = float64(2)

		b, err := ValidateBook(raw)
		require.NoError(t, err)
		assert.Equal(t, 2, b.SeriesOrder)
	})

	t.Run("series order without series stays permitted", func(t *testing.T) {
		raw := minimalBook()
		raw["seriesOrder"] = 1

		b, err := ValidateBook(raw)
		require.NoError(t, err)
		assert.Empty(t, b.Series)
		assert.Equal(t, 1, b.SeriesOrder)
	})
}

func TestValidateBook_URLRules(t *testing.T) {
	t.Run("buy link url must be absolute", func(t *testing.T) {
		raw := minimalBook()
		raw["buyLinks"] = []any{
			map[string]any{"name": "Amazon", "url": "not-a-url"},
		}

		_, err := ValidateBook(raw)
		f := requireFailure(t, err)

		require.Len(t, f.Violations, 1)
		assert.Equal(t, "buyLinks[0].url", f.Violations[0].Path)
		assert.Equal(t, CodeURLSyntax, f.Violations[0].Code)
	})

	t.Run("scheme-relative and host-less urls are rejected", func(t *testing.T) {
		for _, u := range []string{"/books/1", "mailto:author@example.com", "//example.com/x"} {
			raw := minimalBook()
			raw["buyLinks"] = []any{
				map[string]any{"name": "Shop", "url": u},
			}

			_, err := ValidateBook(raw)
			f := requireFailure(t, err)
			assert.Equal(t, CodeURLSyntax, f.Violations[0].Code, "url %q", u)
		}
	})

	t.Run("same malformed text is fine in a downloadable url", func(t *testing.T) {
		raw := minimalBook()
		raw["downloadables"] = []any{
			map[string]any{"title": "Sample", "description": "D", "url": "not-a-url"},
		}

		b, err := ValidateBook(raw)
		require.NoError(t, err)
		require.Len(t, b.Downloadables, 1)
		assert.Equal(t, "not-a-url", b.Downloadables[0].URL)
	})

	t.Run("violations in later elements carry their index", func(t *testing.T) {
		raw := minimalBook()
		raw["buyLinks"] = []any{
			map[string]any{"name": "Amazon", "url": "https://amazon.com/dp/1"},
			map[string]any{"url": "https://kobo.com/b/1"},
			map[string]any{"name": "B&N", "url": "::broken::"},
		}

		_, err := ValidateBook(raw)
		f := requireFailure(t, err)

		assert.ElementsMatch(t, []string{"buyLinks[1].name", "buyLinks[2].url"}, violationPaths(f))
	})

	t.Run("non-object list element is a type violation", func(t *testing.T) {
		raw := minimalBook()
		raw["buyLinks"] = []any{"https://amazon.com"}

		_, err := ValidateBook(raw)
		f := requireFailure(t, err)

		require.Len(t, f.Violations, 1)
		assert.Equal(t, "buyLinks[0]", f.Violations[0].Path)
		assert.Equal(t, CodeTypeMismatch, f.Violations[0].Code)
	})
}

func TestValidateNews(t *testing.T) {
	t.Run("minimal record succeeds and draft defaults to false", func(t *testing.T) {
		n, err := ValidateNews(minimalNews())
		require.NoError(t, err)

		assert.Equal(t, domain.CategoryUpdates, n.Category)
		assert.False(t, n.Draft)
		assert.Equal(t, 2025, n.PublishDate.Year)
		assert.Equal(t, time.January, n.PublishDate.Month)
		assert.Equal(t, 15, n.PublishDate.Day)
	})

	t.Run("explicit draft true is kept", func(t *testing.T) {
		raw := minimalNews()
		raw["draft"] = true
		raw["image"] = "/news/launch.webp"

		n, err := ValidateNews(raw)
		require.NoError(t, err)
		assert.True(t, n.Draft)
		assert.Equal(t, "/news/launch.webp", n.Image)
	})

	t.Run("category outside the closed set fails on category", func(t *testing.T) {
		raw := minimalNews()
		raw["category"] = "announcements"

		_, err := ValidateNews(raw)
		f := requireFailure(t, err)

		require.Len(t, f.Violations, 1)
		assert.Equal(t, "category", f.Violations[0].Path)
		assert.Equal(t, CodeEnumViolation, f.Violations[0].Code)
	})

	t.Run("non-boolean draft is a type violation", func(t *testing.T) {
		raw := minimalNews()
		raw["draft"] = "yes"

		_, err := ValidateNews(raw)
		f := requireFailure(t, err)

		require.Len(t, f.Violations, 1)
		assert.Equal(t, "draft", f.Violations[0].Path)
		assert.Equal(t, CodeTypeMismatch, f.Violations[0].Code)
	})
}

func TestValidate_MalformedInput(t *testing.T) {
	for _, raw := range []any{nil, "a string", 42, []any{"x"}} {
		_, err := ValidateBook(raw)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedInput, "input %v", raw)

		var f *Failure
		assert.False(t, errors.As(err, &f), "malformed input must not produce field violations")
	}
}

func TestValidate_StringKeyedAnyMap(t *testing.T) {
	raw := map[any]any{
		"title":       "T",
		"description": "D",
		"publishDate": "2025-01-15",
		"category":    "events",
	}

	n, err := ValidateNews(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryEvents, n.Category)
}

// Feeding a normalized record back through validation, with the date
// reformatted to the same ISO string, must yield an identical result.
func TestValidate_Idempotence(t *testing.T) {
	raw := minimalBook()
	raw["series"] = "Saga"
	raw["seriesOrder"] = 1
	raw["buyLinks"] = []any{
		map[string]any{"name": "Amazon", "url": "https://amazon.com/dp/1"},
	}

	first, err := ValidateBook(raw)
	require.NoError(t, err)

	again := map[string]any{
		"title":       first.Title,
		"description": first.Description,
		"coverImage":  first.CoverImage,
		"publishDate": first.PublishDate.String(),
		"status":      string(first.Status),
		"series":      first.Series,
		"seriesOrder": first.SeriesOrder,
	}
	var links []any
	for _, l := range first.BuyLinks {
		links = append(links, map[string]any{"name": l.Name, "url": l.URL})
	}
	again["buyLinks"] = links

	second, err := ValidateBook(again)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFailure_ErrorMessage(t *testing.T) {
	raw := minimalBook()
	raw["status"] = "invalid"

	_, err := ValidateBook(raw)
	require.Error(t, err)

	wrapped := fmt.Errorf("check books/first-novel: %w", err)
	var f *Failure
	require.ErrorAs(t, wrapped, &f)
	assert.Contains(t, err.Error(), "books record failed validation")
	assert.Contains(t, err.Error(), "status")
}
