package postgres

import (
	"context"

	"swirl/internal/domain/entity"
	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/repository"
	"swirl/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotification persists a new notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidTarget.WrapMessage("target kind and id must be set together")
		}
		if isUniqueConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid notification record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
// Reads hit the primary: delivery events arrive right after the insert and replicas may lag.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id))
}

// FindNotificationForRecipient retrieves a notification only if it belongs to the recipient.
func (repo *notificationRepository) FindNotificationForRecipient(ctx context.Context, id, recipientID uuid.UUID) (*entity.Notification, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("id = ? AND recipient_id = ?", id, recipientID))
}

func (repo *notificationRepository) findOne(_ context.Context, scope *gorm.DB) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := scope.First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification")
	}

	return toNotificationDomain(&notificationM)
}

// FindNotificationsByRecipient lists a user's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by recipient")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		n, err := toNotificationDomain(notificationM)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// CountUnread returns how many of the recipient's notifications are unread.
func (repo *notificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead sets is_read to true. Rows that are already read still count as found.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		UpdateColumn("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkChannelSent sets only the sent flag column of the given channel.
func (repo *notificationRepository) MarkChannelSent(ctx context.Context, id uuid.UUID, channel entity.Channel) error {
	var column string
	switch channel {
	case entity.ChannelEmail:
		column = "email_sent"
	case entity.ChannelPush:
		column = "push_sent"
	default:
		return errors.Errorf("unknown channel %q", channel)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		UpdateColumn(column, true)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to mark %s sent", channel)
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) (*entity.Notification, error) {
	if data == nil {
		return nil, nil
	}

	target, err := entity.NewTarget(data.TargetKind, data.TargetID)
	if err != nil {
		return nil, errors.Wrapf(err, "notification %s", data.ID)
	}

	return &entity.Notification{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		ActorID:     data.ActorID,
		Action:      entity.ActionKind(data.ActionType),
		Target:      target,
		IsRead:      data.IsRead,
		EmailSent:   data.EmailSent,
		PushSent:    data.PushSent,
		CreatedAt:   data.CreatedAt,
	}, nil
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	kind, targetID := entity.SplitTarget(data.Target)

	return &model.NotificationModel{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		ActorID:     data.ActorID,
		ActionType:  string(data.Action),
		TargetKind:  kind,
		TargetID:    targetID,
		IsRead:      data.IsRead,
		EmailSent:   data.EmailSent,
		PushSent:    data.PushSent,
		CreatedAt:   data.CreatedAt,
	}
}
