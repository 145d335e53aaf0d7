// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"swirl/config"
	deliverycontext "swirl/internal/delivery/context"
	"swirl/internal/domain/entity"
	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/repository"
	"swirl/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	delivery         usecase.DeliveryUsecase
	defaultPageSize  int
	maxPageSize      int
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Delivery         usecase.DeliveryUsecase
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	srv := &notificationService{
		notificationRepo: params.NotificationRepo,
		delivery:         params.Delivery,
		defaultPageSize:  20,
		maxPageSize:      100,
		logger:           params.Logger,
	}
	if params.Config != nil && params.Config.Notification != nil {
		srv.defaultPageSize = params.Config.Notification.DefaultPageSize
		srv.maxPageSize = params.Config.Notification.MaxPageSize
	}

	return srv
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Notify stores a notification and fans it out to the enabled channels.
func (srv *notificationService) Notify(ctx context.Context, req *usecase.NotifyRequest) (*entity.Notification, error) {
	if err := validateNotifyRequest(req); err != nil {
		return nil, err
	}

	// Acting on your own content is not news; account-level events still are.
	if req.RecipientID == req.ActorID && req.Target != nil {
		srv.log(ctx).Debug("Suppressing self notification",
			slog.Any("user_id", req.RecipientID), slog.String("action", string(req.Action)))

		return nil, nil
	}

	notification := &entity.Notification{
		ID:          uuid.New(),
		RecipientID: req.RecipientID,
		ActorID:     req.ActorID,
		Action:      req.Action,
		Target:      req.Target,
		CreatedAt:   time.Now(),
	}

	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		srv.log(ctx).Error("Failed to store notification",
			slog.Any("error", err),
			slog.Any("recipient_id", req.RecipientID),
			slog.String("action", string(req.Action)))

		return nil, nil
	}

	channels := req.Channels
	if channels == nil {
		channels = srv.delivery.Channels()
	}
	if len(channels) > 0 {
		srv.delivery.Dispatch(ctx, notification, channels)
	}

	return notification, nil
}

func validateNotifyRequest(req *usecase.NotifyRequest) error {
	switch {
	case req == nil:
		return errors.Wrap(domainerrors.ErrValidationFailed, "notify request is required")
	case req.RecipientID == uuid.Nil:
		return errors.Wrap(domainerrors.ErrValidationFailed, "recipient is required")
	case req.ActorID == uuid.Nil:
		return errors.Wrap(domainerrors.ErrValidationFailed, "actor is required")
	case !req.Action.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown action %q", req.Action)
	}

	return nil
}

// ListNotifications retrieves a user's notifications, newest first
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = srv.defaultPageSize
	}
	limit = min(limit, srv.maxPageSize)
	offset = max(offset, 0)

	notifications, err := srv.notificationRepo.FindNotificationsByRecipient(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// UnreadCount returns the number of unread notifications for a user
func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead marks one of the user's notifications as read
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*usecase.MarkReadResult, error) {
	notification, err := srv.notificationRepo.FindNotificationForRecipient(ctx, notificationID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
		}

		return nil, errors.Wrap(err, "failed to find notification")
	}

	if notification.IsRead {
		return &usecase.MarkReadResult{Notification: notification, AlreadyRead: true}, nil
	}

	if err := srv.notificationRepo.MarkRead(ctx, notification.ID); err != nil {
		srv.log(ctx).Error("Failed to mark notification read", slog.Any("error", err), slog.Any("notification_id", notificationID))

		return nil, errors.Wrap(err, "failed to mark notification read")
	}
	notification.IsRead = true

	return &usecase.MarkReadResult{Notification: notification}, nil
}
