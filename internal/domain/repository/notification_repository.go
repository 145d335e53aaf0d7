package repository

import (
	"context"
	"errors"

	"swirl/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification. ID and CreatedAt are filled in when zero.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationForRecipient retrieves a notification only if it belongs to the recipient.
	FindNotificationForRecipient(ctx context.Context, id, recipientID uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByRecipient lists a user's notifications, newest first.
	FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnread returns how many of the recipient's notifications are unread.
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// MarkRead sets is_read to true. It is idempotent.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkChannelSent sets only the sent flag column of the given channel.
	MarkChannelSent(ctx context.Context, id uuid.UUID, channel entity.Channel) error
}
