package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "swirl/internal/delivery/context"
	"swirl/internal/domain/entity"
	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/repository"
	"swirl/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type pushTokenService struct {
	tokenRepo repository.PushTokenRepository
	logger    *slog.Logger
}

// NewPushTokenService creates a new push token registry
func NewPushTokenService(tokenRepo repository.PushTokenRepository, logger *slog.Logger) usecase.PushTokenUsecase {
	return &pushTokenService{
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

func (srv *pushTokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register stores the token for the owner. A token already known under another
// owner moves to this one; either way it ends up active.
func (srv *pushTokenService) Register(ctx context.Context, ownerID uuid.UUID, token, deviceType string) (*entity.PushToken, error) {
	token = strings.TrimSpace(token)
	if ownerID == uuid.Nil || token == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "owner and token are required")
	}

	device, err := entity.ParseDeviceClass(strings.ToLower(strings.TrimSpace(deviceType)))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidDeviceClass, err.Error())
	}

	now := time.Now()
	registered, err := srv.tokenRepo.UpsertToken(ctx, &entity.PushToken{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Token:     token,
		Device:    device,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to register push token", slog.Any("error", err), slog.Any("user_id", ownerID))

		return nil, errors.Wrap(domainerrors.ErrPushTokenRegistrationFailed, err.Error())
	}

	srv.log(ctx).Info("Push token registered", slog.Any("user_id", ownerID), slog.String("device_type", string(device)))

	return registered, nil
}

// Deactivate disables the owner's token
func (srv *pushTokenService) Deactivate(ctx context.Context, ownerID uuid.UUID, token string) error {
	if err := srv.tokenRepo.DeactivateOwnedToken(ctx, ownerID, token); err != nil {
		if errors.Is(err, repository.ErrPushTokenNotFound) {
			return errors.Wrap(domainerrors.ErrPushTokenNotFound, "push token not found")
		}

		return errors.Wrap(err, "failed to deactivate push token")
	}

	srv.log(ctx).Info("Push token deactivated", slog.Any("user_id", ownerID))

	return nil
}

// ActiveTokensFor returns the token strings that push messages for the user should go to
func (srv *pushTokenService) ActiveTokensFor(ctx context.Context, userID uuid.UUID) ([]string, error) {
	tokens, err := srv.tokenRepo.FindActiveTokensByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active push tokens")
	}

	result := make([]string, 0, len(tokens))
	for _, t := range tokens {
		result = append(result, t.Token)
	}

	return result, nil
}

// ListTokens retrieves all of the owner's tokens, including inactive ones
func (srv *pushTokenService) ListTokens(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error) {
	tokens, err := srv.tokenRepo.FindTokensByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find push tokens")
	}

	return tokens, nil
}
