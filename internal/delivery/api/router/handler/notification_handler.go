package handler

import (
	"log/slog"
	"net/http"
	"time"

	"swirl/internal/delivery/api/middleware"
	"swirl/internal/delivery/api/response"
	deliverycontext "swirl/internal/delivery/context"
	"swirl/internal/domain/entity"
	"swirl/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// NotificationResponse is the wire form of a notification.
type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	ActorID     uuid.UUID  `json:"actor_id"`
	ActionType  string     `json:"action_type"`
	TargetKind  *string    `json:"target_kind"`
	TargetID    *uuid.UUID `json:"target_id"`
	IsRead      bool       `json:"is_read"`
	EmailSent   bool       `json:"email_sent"`
	PushSent    bool       `json:"push_sent"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toNotificationResponse(n *entity.Notification) *NotificationResponse {
	kind, id := entity.SplitTarget(n.Target)

	return &NotificationResponse{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		ActorID:     n.ActorID,
		ActionType:  string(n.Action),
		TargetKind:  kind,
		TargetID:    id,
		IsRead:      n.IsRead,
		EmailSent:   n.EmailSent,
		PushSent:    n.PushSent,
		CreatedAt:   n.CreatedAt,
	}
}

// TriggerNotificationRequest represents an action a collaborating service reports on behalf of a user.
type TriggerNotificationRequest struct {
	RecipientID uuid.UUID  `json:"recipient_id" validate:"required"`
	ActorID     uuid.UUID  `json:"actor_id" validate:"required"`
	ActionType  string     `json:"action_type" validate:"required"`
	TargetKind  *string    `json:"target_kind,omitempty"`
	TargetID    *uuid.UUID `json:"target_id,omitempty"`
	Channels    []string   `json:"channels,omitempty" validate:"omitempty,dive,oneof=email push"`
}

// ListNotifications handles retrieving the current user's notifications, newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset, err := parsePagination(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGINATION", err.Error())
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data := make([]*NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		data = append(data, toNotificationResponse(n))
	}

	return response.Success(c, http.StatusOK, data)
}

// UnreadCount handles retrieving the number of unread notifications
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread_count": count})
}

// MarkRead handles marking one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	result, err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if result.AlreadyRead {
		return response.Success(c, http.StatusOK, map[string]string{"message": "Notification already marked as read"})
	}

	return response.Success(c, http.StatusOK, toNotificationResponse(result.Notification))
}

// TriggerNotification handles an action reported by a collaborating service. It must be used AFTER AuthenticateService.
func (h *NotificationHandler) TriggerNotification(c echo.Context) error {
	var req TriggerNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification event")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	action := entity.ActionKind(req.ActionType)
	if action.IsAccountLevel() && req.RecipientID != req.ActorID {
		return response.BadRequest(c, "INVALID_RECIPIENT", "Account events can only notify the account owner")
	}

	target, err := entity.NewTarget(req.TargetKind, req.TargetID)
	if err != nil {
		return response.BadRequest(c, "INVALID_TARGET", "target_kind and target_id must be set together")
	}

	notifyReq := &usecase.NotifyRequest{
		RecipientID: req.RecipientID,
		ActorID:     req.ActorID,
		Action:      action,
		Target:      target,
	}
	if req.Channels != nil {
		notifyReq.Channels = make([]entity.Channel, 0, len(req.Channels))
		for _, ch := range req.Channels {
			notifyReq.Channels = append(notifyReq.Channels, entity.Channel(ch))
		}
	}

	caller, _ := deliverycontext.GetCaller(c)
	h.logger.Debug("Notification event received",
		slog.String("caller", caller), slog.String("action", req.ActionType), slog.Any("recipient_id", req.RecipientID))

	notification, err := h.notificationUC.Notify(c.Request().Context(), notifyReq)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if notification == nil {
		return response.Success(c, http.StatusAccepted, map[string]string{"message": "No notification created"})
	}

	return response.Success(c, http.StatusCreated, toNotificationResponse(notification))
}
