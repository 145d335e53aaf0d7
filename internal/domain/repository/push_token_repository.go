package repository

import (
	"context"

	"swirl/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPushTokenNotFound is returned when no token row matches the owner and token.
var ErrPushTokenNotFound = errors.New("push token not found")

// PushTokenRepository defines the interface for push token database operations.
type PushTokenRepository interface {
	// UpsertToken inserts the token or, when it already exists, moves it to the
	// given owner, updates the device class and reactivates it.
	UpsertToken(ctx context.Context, token *entity.PushToken) (*entity.PushToken, error)

	// DeactivateOwnedToken marks the owner's token inactive.
	// It returns ErrPushTokenNotFound when the owner has no such token.
	DeactivateOwnedToken(ctx context.Context, ownerID uuid.UUID, token string) error

	// DeactivateTokens marks the given tokens inactive regardless of owner.
	DeactivateTokens(ctx context.Context, tokens []string) error

	// FindActiveTokensByOwner retrieves the owner's active tokens.
	FindActiveTokensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error)

	// FindTokensByOwner retrieves all of the owner's tokens (including inactive).
	FindTokensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error)
}
