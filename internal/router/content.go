package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmorrow/inkwell/internal/apperr"
	"github.com/lmorrow/inkwell/internal/catalog"
	"github.com/lmorrow/inkwell/internal/domain"
	"github.com/lmorrow/inkwell/internal/schema"
)

// ContentRouter exposes the validated catalog over HTTP.
type ContentRouter struct {
	e   *echo.Echo
	cat *catalog.Catalog
}

func NewContentRouter(e *echo.Echo, cat *catalog.Catalog) *ContentRouter {
	return &ContentRouter{
		e:   e,
		cat: cat,
	}
}

func (r *ContentRouter) Bind() {
	g := r.e.Group("/api")
	g.GET("/books", r.listBooks)
	g.GET("/books/:slug", r.getBook)
	g.GET("/news", r.listNews)
	g.GET("/news/:slug", r.getNews)
	g.POST("/validate/:collection", r.validateRecord)
}

type bookDetail struct {
	domain.BookEntry
	BodyHTML string `json:"bodyHtml,omitempty"`
}

type newsDetail struct {
	domain.NewsEntry
	BodyHTML string `json:"bodyHtml,omitempty"`
}

func (r *ContentRouter) listBooks(c echo.Context) error {
	if series := c.QueryParam("series"); series != "" {
		return c.JSON(http.StatusOK, r.cat.BooksInSeries(series))
	}
	return c.JSON(http.StatusOK, r.cat.Books())
}

func (r *ContentRouter) getBook(c echo.Context) error {
	slug := c.Param("slug")
	b, ok := r.cat.Book(slug)
	if !ok {
		return apperr.NewNotFound("book", slug)
	}

	html, err := r.cat.RenderBody(b.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookDetail{BookEntry: b, BodyHTML: html})
}

func (r *ContentRouter) listNews(c echo.Context) error {
	includeDrafts := c.QueryParam("drafts") == "true"

	if cat := c.QueryParam("category"); cat != "" {
		return c.JSON(http.StatusOK, r.cat.NewsByCategory(domain.NewsCategory(cat), includeDrafts))
	}
	return c.JSON(http.StatusOK, r.cat.News(includeDrafts))
}

func (r *ContentRouter) getNews(c echo.Context) error {
	slug := c.Param("slug")
	n, ok := r.cat.NewsItem(slug)
	if !ok {
		return apperr.NewNotFound("news post", slug)
	}

	html, err := r.cat.RenderBody(n.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newsDetail{NewsEntry: n, BodyHTML: html})
}

// validateRecord dry-runs one record against a collection schema, so
// authors can check front matter before committing a file.
func (r *ContentRouter) validateRecord(c echo.Context) error {
	var raw map[string]any
	if err := c.Bind(&raw); err != nil {
		return apperr.NewValidationWrap("request body must be a JSON object", err)
	}

	switch domain.Collection(c.Param("collection")) {
	case domain.CollectionBooks:
		entry, err := schema.ValidateBook(raw)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, entry)
	case domain.CollectionNews:
		entry, err := schema.ValidateNews(raw)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, entry)
	default:
		return apperr.NewValidation("unknown collection: " + c.Param("collection"))
	}
}
