package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types signed into the "type" claim.
const (
	// TokenTypeAccess identifies an end user; the subject is the user ID.
	TokenTypeAccess = "access"
	// TokenTypeService identifies a collaborating backend; the subject is the service name.
	TokenTypeService = "service"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID
	Type   string
	jwt.RegisteredClaims
}

// TokenService validates access and service tokens issued by the auth service.
// Issuing tokens is the auth service's job.
type TokenService interface {
	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
