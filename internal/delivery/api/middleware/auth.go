package middleware

import (
	"strings"

	"swirl/internal/delivery/api/response"
	deliverycontext "swirl/internal/delivery/context"
	"swirl/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates bearer tokens issued by the auth service.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid user access token and stores the user ID for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok, err := m.claims(c)
		if !ok {
			return err
		}

		if claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "An access token is required")
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}

// AuthenticateService admits only collaborating services holding a service token.
func (m *AuthMiddleware) AuthenticateService(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok, err := m.claims(c)
		if !ok {
			return err
		}

		if claims.Type != service.TokenTypeService {
			return response.Forbidden(c, "SERVICE_TOKEN_REQUIRED", "This endpoint is reserved for internal services")
		}

		deliverycontext.SetCaller(c, claims.Subject)

		return next(c)
	}
}

// claims validates the bearer token. When ok is false the 401 has already been written.
func (m *AuthMiddleware) claims(c echo.Context) (*service.Claims, bool, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, false, response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
	}

	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || strings.TrimSpace(tokenString) == "" {
		return nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
	if err != nil {
		return nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	return claims, true, nil
}

// GetUserID returns the authenticated user's ID. It must be used AFTER Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}
