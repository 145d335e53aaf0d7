package postgres

import (
	"context"
	"time"

	"swirl/internal/domain/entity"
	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/repository"
	"swirl/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pushTokenRepository implements the repository.PushTokenRepository interface.
type pushTokenRepository struct {
	db *gorm.DB
}

// NewPushTokenRepository is the constructor for pushTokenRepository.
func NewPushTokenRepository(db *gorm.DB) repository.PushTokenRepository {
	return &pushTokenRepository{db: db}
}

// UpsertToken inserts the token or moves an existing one to the new owner and reactivates it.
func (repo *pushTokenRepository) UpsertToken(ctx context.Context, token *entity.PushToken) (*entity.PushToken, error) {
	tokenM := fromPushTokenDomain(token)
	now := time.Now()
	if tokenM.CreatedAt.IsZero() {
		tokenM.CreatedAt = now
	}
	tokenM.UpdatedAt = now
	tokenM.IsActive = true

	if err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "token"}},
				DoUpdates: clause.Assignments(map[string]any{
					"owner_id":    tokenM.OwnerID,
					"device_type": tokenM.DeviceType,
					"is_active":   true,
					"updated_at":  now,
				}),
			},
			clause.Returning{},
		).
		Create(tokenM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required push token information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert push token")
	}

	return toPushTokenDomain(tokenM), nil
}

// DeactivateOwnedToken marks the owner's token inactive.
func (repo *pushTokenRepository) DeactivateOwnedToken(ctx context.Context, ownerID uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Where("owner_id = ? AND token = ?", ownerID, token).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate push token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPushTokenNotFound
	}

	return nil
}

// DeactivateTokens marks the given tokens inactive regardless of owner.
func (repo *pushTokenRepository) DeactivateTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Where("token IN ?", tokens).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()}).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate push tokens")
	}

	return nil
}

// FindActiveTokensByOwner retrieves the owner's active tokens.
func (repo *pushTokenRepository) FindActiveTokensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Where("owner_id = ? AND is_active = ?", ownerID, true))
}

// FindTokensByOwner retrieves all of the owner's tokens (including inactive).
func (repo *pushTokenRepository) FindTokensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

func (repo *pushTokenRepository) find(_ context.Context, scope *gorm.DB) ([]*entity.PushToken, error) {
	var tokenModels []*model.PushTokenModel

	if err := scope.Order("updated_at DESC").Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push tokens")
	}

	tokens := make([]*entity.PushToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toPushTokenDomain(tokenM))
	}

	return tokens, nil
}

// --- Mapper Functions ---

// toPushTokenDomain converts a GORM PushTokenModel to a domain PushToken entity.
func toPushTokenDomain(data *model.PushTokenModel) *entity.PushToken {
	if data == nil {
		return nil
	}

	return &entity.PushToken{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Token:     data.Token,
		Device:    entity.DeviceClass(data.DeviceType),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPushTokenDomain converts a domain PushToken entity to a GORM PushTokenModel.
func fromPushTokenDomain(data *entity.PushToken) *model.PushTokenModel {
	if data == nil {
		return nil
	}

	return &model.PushTokenModel{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Token:      data.Token,
		DeviceType: string(data.Device),
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
