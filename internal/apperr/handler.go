package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmorrow/inkwell/internal/schema"
)

// GlobalErrorHandler maps domain errors onto HTTP responses. Schema
// failures carry their full violation list so a caller can fix every
// field in one pass.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var sf *schema.Failure
		if errors.As(err, &sf) {
			_ = c.JSON(http.StatusBadRequest, map[string]any{
				"error":      "validation failed",
				"collection": sf.Collection,
				"violations": sf.Violations,
			})
			return
		}

		if errors.Is(err, schema.ErrMalformedInput) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		var nf *NotFoundError
		if errors.As(err, &nf) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": nf.Error()})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
