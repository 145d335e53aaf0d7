package usecase

import (
	"context"

	"swirl/internal/domain/entity"

	"github.com/google/uuid"
)

// PushTokenUsecase defines the interface for push token registry use cases
type PushTokenUsecase interface {
	// Register stores the token for the owner, taking it over from any previous owner and reactivating it
	Register(ctx context.Context, ownerID uuid.UUID, token, deviceType string) (*entity.PushToken, error)

	// Deactivate disables the owner's token; it fails with not found if the owner never registered it
	Deactivate(ctx context.Context, ownerID uuid.UUID, token string) error

	// ActiveTokensFor returns the token strings that push messages for the user should go to
	ActiveTokensFor(ctx context.Context, userID uuid.UUID) ([]string, error)

	// ListTokens retrieves all of the owner's tokens, including inactive ones
	ListTokens(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error)
}
