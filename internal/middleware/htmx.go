package middleware

import "github.com/labstack/echo/v4"

// HeaderHXRequest is set by htmx on every request it issues.
const HeaderHXRequest = "HX-Request"

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get(HeaderHXRequest) == "true"
}

// VaryHTMX marks responses as depending on HX-Request, so caches keep the
// fragment and full-page variants apart.
func VaryHTMX(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Add(echo.HeaderVary, HeaderHXRequest)
		return next(c)
	}
}
