package auth

import (
	"testing"
	"time"

	"swirl/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "test_access_secret_key_very_long_for_testing"
	testServiceSecret = "test_service_secret_key_very_long_for_testing"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	userID := uuid.New()
	valid := jwt.MapClaims{
		"sub":  userID.String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
		"type": "access",
	}

	t.Run("valid access token", func(t *testing.T) {
		claims, err := jwtService.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), valid))
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "access", claims.Type)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		refresh := jwt.MapClaims{"sub": userID.String(), "exp": time.Now().Add(time.Hour).Unix(), "type": "refresh"}

		_, err := jwtService.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), refresh))
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := jwtService.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), valid))
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		expired := jwt.MapClaims{"sub": userID.String(), "exp": time.Now().Add(-time.Minute).Unix(), "type": "access"}

		_, err := jwtService.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), expired))
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("missing expiry", func(t *testing.T) {
		noExp := jwt.MapClaims{"sub": userID.String(), "type": "access"}

		_, err := jwtService.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), noExp))
		assert.Error(t, err)
	})

	t.Run("bad subject", func(t *testing.T) {
		badSub := jwt.MapClaims{"sub": "not-a-uuid", "exp": time.Now().Add(time.Hour).Unix(), "type": "access"}

		_, err := jwtService.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), badSub))
		assert.ErrorIs(t, err, ErrInvalidTokenSubject)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		_, err := jwtService.ValidateToken(signToken(t, jwt.SigningMethodHS512, []byte(testAccessSecret), valid))
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtService.ValidateToken("invalid.token.string")
		assert.Error(t, err)
	})
}

func TestJWTService_ValidateToken_ServiceTokens(t *testing.T) {
	cfg := newTestConfig(testAccessSecret)
	cfg.SecretKey.Service = testServiceSecret
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	serviceClaims := jwt.MapClaims{
		"sub":  "blog-service",
		"exp":  time.Now().Add(5 * time.Minute).Unix(),
		"type": "service",
	}

	t.Run("valid service token", func(t *testing.T) {
		claims, err := jwtService.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testServiceSecret), serviceClaims))
		require.NoError(t, err)
		assert.Equal(t, "service", claims.Type)
		assert.Equal(t, "blog-service", claims.Subject)
		assert.Equal(t, uuid.Nil, claims.UserID)
	})

	t.Run("service token signed with the access secret", func(t *testing.T) {
		_, err := jwtService.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), serviceClaims))
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("access token signed with the service secret", func(t *testing.T) {
		access := jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(time.Hour).Unix(), "type": "access"}

		_, err := jwtService.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testServiceSecret), access))
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("service token without subject", func(t *testing.T) {
		noSub := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix(), "type": "service"}

		_, err := jwtService.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testServiceSecret), noSub))
		assert.ErrorIs(t, err, ErrInvalidTokenSubject)
	})
}

func TestJWTService_ValidateToken_ServiceTokensDisabledWithoutSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	token := signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
		"sub":  "blog-service",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "service",
	})

	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}
