// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"swirl/config"
	"swirl/internal/domain/service"
)

var (
	ErrInvalidTokenType    = errors.New("token is neither an access nor a service token")
	ErrInvalidTokenSubject = errors.New("token subject is not valid for its type")
)

// tokenClaims mirrors the claims the auth service signs into its tokens.
type tokenClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It only verifies tokens; the auth service issues them with the shared secrets.
type jwtService struct {
	accessSecret  []byte
	serviceSecret []byte
	parser        *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		serviceSecret: []byte(cfg.SecretKey.Service),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken checks the signature, expiry and type of a token.
// Each token type is verified with its own secret.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &tokenClaims{}
	if _, err := s.parser.ParseWithClaims(tokenString, claims, s.keyFor); err != nil {
		return nil, err
	}

	result := &service.Claims{
		Type:             claims.Type,
		RegisteredClaims: claims.RegisteredClaims,
	}

	if claims.Type == service.TokenTypeService {
		if strings.TrimSpace(claims.Subject) == "" {
			return nil, ErrInvalidTokenSubject
		}

		return result, nil
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidTokenSubject
	}
	result.UserID = userID

	return result, nil
}

func (s *jwtService) keyFor(token *jwt.Token) (any, error) {
	claims, ok := token.Claims.(*tokenClaims)
	if !ok {
		return nil, ErrInvalidTokenType
	}

	switch claims.Type {
	case service.TokenTypeAccess:
		return s.accessSecret, nil
	case service.TokenTypeService:
		if len(s.serviceSecret) == 0 {
			return nil, ErrInvalidTokenType
		}

		return s.serviceSecret, nil
	default:
		return nil, ErrInvalidTokenType
	}
}
