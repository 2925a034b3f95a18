package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pagekit-go/pagekit/pkg/pagedlist"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		if errors.Is(err, pagedlist.ErrInvalidPageSize) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error(), "title": "validation error"})
			return
		}

		// A missing locator resolver is a wiring bug, not a client error.
		if errors.Is(err, pagedlist.ErrResolverNotSet) {
			slog.Error("Locator resolver is not wired", "error", err, "uri", c.Request().RequestURI)
			_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
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
