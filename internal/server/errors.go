package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/pattivana/internal/domain"
	"github.com/nfrund/pattivana/internal/middleware"
)

// setupErrorHandling installs the central error handler. Known errors map to
// their status codes; anything else is a 500 logged with its stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code = he.Code
			message = fmt.Sprint(he.Message)
		case errors.Is(err, domain.ErrNotFound):
			code = http.StatusNotFound
			message = http.StatusText(code)
		case errors.Is(err, domain.ErrContentUnavailable):
			code = http.StatusServiceUnavailable
			message = http.StatusText(code)
			logger.Warn("Content unavailable", "error", err)
		default:
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.String(code, message)
		}
		if err != nil {
			logger.Error("Failed to write error response", "error", err)
		}
	}
}
