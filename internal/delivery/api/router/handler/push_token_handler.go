package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"swirl/internal/delivery/api/middleware"
	"swirl/internal/delivery/api/response"
	"swirl/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushTokenHandlerParams holds dependencies for PushTokenHandler, injected by Fx.
type PushTokenHandlerParams struct {
	fx.In

	PushTokenUC usecase.PushTokenUsecase
	Logger      *slog.Logger
}

// PushTokenHandler holds dependencies for push-token handlers
type PushTokenHandler struct {
	pushTokenUC usecase.PushTokenUsecase
	logger      *slog.Logger
}

// NewPushTokenHandler is the constructor for PushTokenHandler
func NewPushTokenHandler(params PushTokenHandlerParams) *PushTokenHandler {
	return &PushTokenHandler{
		pushTokenUC: params.PushTokenUC,
		logger:      params.Logger,
	}
}

// RegisterPushTokenRequest represents the request body for registering a device token
type RegisterPushTokenRequest struct {
	Token      string `json:"token" validate:"required,max=255"`
	DeviceType string `json:"device_type" validate:"omitempty,oneof=ios android web"`
}

// RegisterToken handles registering a device token for the current user
func (h *PushTokenHandler) RegisterToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterPushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	token, err := h.pushTokenUC.Register(c.Request().Context(), userID, req.Token, req.DeviceType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token)
}

// ListTokens handles retrieving the current user's device tokens
func (h *PushTokenHandler) ListTokens(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	tokens, err := h.pushTokenUC.ListTokens(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens)
}

// DeactivateToken handles deactivating one of the current user's device tokens
func (h *PushTokenHandler) DeactivateToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	token, err := url.PathUnescape(c.Param("token"))
	if err != nil || token == "" {
		return response.BadRequest(c, "INVALID_TOKEN_PARAM", "Invalid push token")
	}

	if err := h.pushTokenUC.Deactivate(c.Request().Context(), userID, token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Push token deactivated successfully"})
}
