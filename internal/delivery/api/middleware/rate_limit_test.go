package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"swirl/config"
	deliverycontext "swirl/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedEcho(cfg *config.Config) *echo.Echo {
	limiter := NewRateLimitMiddleware(cfg)
	e := echo.New()
	withUser := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw := c.Request().Header.Get("X-Test-User"); raw != "" {
				deliverycontext.SetUserID(c, uuid.MustParse(raw))
			}

			return next(c)
		}
	}
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	e.GET("/notifications", ok, withUser, limiter.Read)
	e.POST("/notifications/:id/read", ok, withUser, limiter.MarkRead)

	return e
}

func hit(e *echo.Echo, method, path string, userID uuid.UUID) int {
	req := httptest.NewRequest(method, path, nil)
	if userID != uuid.Nil {
		req.Header.Set("X-Test-User", userID.String())
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code
}

func TestRateLimitMiddleware_PerUserBuckets(t *testing.T) {
	e := newRateLimitedEcho(&config.Config{Notification: &config.NotificationConfig{
		RateLimit: config.RateLimitConfig{
			Read:     config.RateLimit{PerMinute: 1, Burst: 2, ExpiresIn: time.Minute},
			MarkRead: config.RateLimit{PerMinute: 1, Burst: 1, ExpiresIn: time.Minute},
		},
	}})
	alice, bob := uuid.New(), uuid.New()

	assert.Equal(t, http.StatusNoContent, hit(e, http.MethodGet, "/notifications", alice))
	assert.Equal(t, http.StatusNoContent, hit(e, http.MethodGet, "/notifications", alice))
	assert.Equal(t, http.StatusTooManyRequests, hit(e, http.MethodGet, "/notifications", alice))

	// Another user has a bucket of their own.
	assert.Equal(t, http.StatusNoContent, hit(e, http.MethodGet, "/notifications", bob))

	// Mark-read is limited separately from reads.
	path := "/notifications/" + uuid.NewString() + "/read"
	assert.Equal(t, http.StatusNoContent, hit(e, http.MethodPost, path, alice))
	assert.Equal(t, http.StatusTooManyRequests, hit(e, http.MethodPost, path, alice))
}

func TestRateLimitMiddleware_AnonymousFallsBackToIP(t *testing.T) {
	e := newRateLimitedEcho(&config.Config{Notification: &config.NotificationConfig{
		RateLimit: config.RateLimitConfig{
			Read:     config.RateLimit{PerMinute: 1, Burst: 1, ExpiresIn: time.Minute},
			MarkRead: config.RateLimit{PerMinute: 1, Burst: 1, ExpiresIn: time.Minute},
		},
	}})

	assert.Equal(t, http.StatusNoContent, hit(e, http.MethodGet, "/notifications", uuid.Nil))
	assert.Equal(t, http.StatusTooManyRequests, hit(e, http.MethodGet, "/notifications", uuid.Nil))
	assert.Equal(t, http.StatusNoContent, hit(e, http.MethodGet, "/notifications", uuid.New()))
}

func TestRateLimitMiddleware_RejectionBody(t *testing.T) {
	e := newRateLimitedEcho(&config.Config{Notification: &config.NotificationConfig{
		RateLimit: config.RateLimitConfig{
			Read:     config.RateLimit{PerMinute: 1, Burst: 1, ExpiresIn: time.Minute},
			MarkRead: config.RateLimit{PerMinute: 1, Burst: 1, ExpiresIn: time.Minute},
		},
	}})
	userID := uuid.New()
	hit(e, http.MethodGet, "/notifications", userID)

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	req.Header.Set("X-Test-User", userID.String())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
}
