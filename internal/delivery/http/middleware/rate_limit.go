package middleware

import (
	"math"
	"net/http"
	"time"

	"leadforge/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const rateLimitVisitorTTL = 3 * time.Minute

// NewRateLimiter limits each client IP to perSecond requests with a burst of
// twice that. A non-positive perSecond disables the limiter.
func NewRateLimiter(perSecond float64) echo.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     int(math.Max(1, math.Ceil(perSecond*2))),
		ExpiresIn: rateLimitVisitorTTL,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMIT_IDENTIFIER", "Unable to identify client", "")
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down", "")
		},
	})
}
