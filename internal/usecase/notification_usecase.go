package usecase

import (
	"context"

	"swirl/internal/domain/entity"

	"github.com/google/uuid"
)

// NotifyRequest describes an action one user performed that another user should hear about
type NotifyRequest struct {
	RecipientID uuid.UUID
	ActorID     uuid.UUID
	Action      entity.ActionKind
	Target      entity.Target // nil for account-level events

	// Channels restricts delivery. Nil means every registered channel,
	// an empty slice means the record is stored without delivery.
	Channels []entity.Channel
}

// MarkReadResult is the outcome of marking a notification as read
type MarkReadResult struct {
	Notification *entity.Notification
	AlreadyRead  bool
}

// NotificationUsecase defines the interface for notification use cases
type NotificationUsecase interface {
	// Notify stores a notification and fans it out to the enabled channels.
	// It returns (nil, nil) when the notification is suppressed or could not be stored;
	// the only error it returns is a validation failure.
	Notify(ctx context.Context, req *NotifyRequest) (*entity.Notification, error)

	// ListNotifications retrieves a user's notifications, newest first
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// UnreadCount returns the number of unread notifications for a user
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks one of the user's notifications as read; repeating it is not an error
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*MarkReadResult, error)
}
