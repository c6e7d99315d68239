package schema

import "github.com/lmorrow/inkwell/internal/domain"

// applyDefaults fills absent optional fields with their declared
// defaults. It runs after shape checking so the two concerns stay
// independently testable, and never touches a record that failed.
func applyDefaults(fields []Field, rec map[string]any) {
	for _, f := range fields {
		if f.Default == nil {
			continue
		}
		if _, ok := rec[f.Name]; !ok {
			rec[f.Name] = f.Default()
		}
	}
}

func bindBook(rec map[string]any) domain.BookEntry {
	b := domain.BookEntry{
		Title:           text(rec, "title"),
		Description:     text(rec, "description"),
		CoverImage:      text(rec, "coverImage"),
		PublishDate:     rec["publishDate"].(domain.Date),
		Status:          domain.BookStatus(text(rec, "status")),
		LongDescription: text(rec, "longDescription"),
		ISBN:            text(rec, "isbn"),
		Series:          text(rec, "series"),
		SeriesOrder:     intVal(rec, "seriesOrder"),
		BuyLinks:        make([]domain.BuyLink, 0, len(list(rec, "buyLinks"))),
	}

	for _, item := range list(rec, "buyLinks") {
		b.BuyLinks = append(b.BuyLinks, domain.BuyLink{
			Name: text(item, "name"),
			URL:  text(item, "url"),
		})
	}
	for _, item := range list(rec, "downloadables") {
		b.Downloadables = append(b.Downloadables, domain.Downloadable{
			Title:       text(item, "title"),
			Description: text(item, "description"),
			URL:         text(item, "url"),
		})
	}
	for _, item := range list(rec, "reviews") {
		b.Reviews = append(b.Reviews, domain.Review{
			Quote:       text(item, "quote"),
			Attribution: text(item, "attribution"),
		})
	}

	return b
}

func bindNews(rec map[string]any) domain.NewsEntry {
	return domain.NewsEntry{
		Title:       text(rec, "title"),
		Description: text(rec, "description"),
		PublishDate: rec["publishDate"].(domain.Date),
		Category:    domain.NewsCategory(text(rec, "category")),
		Draft:       boolVal(rec, "draft"),
		Image:       text(rec, "image"),
	}
}

func text(rec map[string]any, key string) string {
	s, _ := rec[key].(string)
	return s
}

func boolVal(rec map[string]any, key string) bool {
	b, _ := rec[key].(bool)
	return b
}

func intVal(rec map[string]any, key string) int {
	n, _ := rec[key].(int)
	return n
}

func list(rec map[string]any, key string) []map[string]any {
	items, _ := rec[key].([]map[string]any)
	return items
}
