package middleware

import (
	"time"

	"swirl/config"
	"swirl/internal/delivery/api/response"
	deliverycontext "swirl/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles the notification endpoints per user.
type RateLimitMiddleware struct {
	read     echo.MiddlewareFunc
	markRead echo.MiddlewareFunc
}

// NewRateLimitMiddleware builds one in-memory limiter per endpoint class from config.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	limits := config.RateLimitConfig{}
	if cfg != nil && cfg.Notification != nil {
		limits = cfg.Notification.RateLimit
	}

	return &RateLimitMiddleware{
		read:     newRateLimiter(limits.Read),
		markRead: newRateLimiter(limits.MarkRead),
	}
}

// Read throttles the notification read endpoints.
func (m *RateLimitMiddleware) Read(next echo.HandlerFunc) echo.HandlerFunc {
	return m.read(next)
}

// MarkRead throttles marking notifications read.
func (m *RateLimitMiddleware) MarkRead(next echo.HandlerFunc) echo.HandlerFunc {
	return m.markRead(next)
}

func newRateLimiter(limit config.RateLimit) echo.MiddlewareFunc {
	perMinute := max(limit.PerMinute, 1)
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / time.Minute.Seconds()),
		Burst:     max(limit.Burst, 1),
		ExpiresIn: limit.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store:               store,
		IdentifierExtractor: rateLimitIdentifier,
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.Forbidden(c, "RATE_LIMIT_IDENTITY", "Unable to identify the requester")
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.TooManyRequests(c, "RATE_LIMITED", "Too many requests, please slow down")
		},
	})
}

// rateLimitIdentifier keys on the authenticated user, falling back to the client IP.
func rateLimitIdentifier(c echo.Context) (string, error) {
	if userID, ok := deliverycontext.GetUserID(c); ok {
		return "user:" + userID.String(), nil
	}

	return "ip:" + c.RealIP(), nil
}
