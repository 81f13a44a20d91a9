package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultFragmentRate is the per-IP request rate allowed on fragment endpoints.
// A page load issues one measurement request; live mode issues one per
// throttled resize.
const DefaultFragmentRate = 10

// RateLimiter creates a rate limiter middleware allowing perSecond requests per
// second per IP address, with a burst of the same size.
func RateLimiter(perSecond int) echo.MiddlewareFunc {
	if perSecond <= 0 {
		perSecond = DefaultFragmentRate
	}
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(perSecond),
			Burst: perSecond,
		}),

		// We identify clients by their real IP address.
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
