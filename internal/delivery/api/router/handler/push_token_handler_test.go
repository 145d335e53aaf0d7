package handler

import (
	"net/http"
	"net/url"
	"testing"

	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/entity"
	mockUsecase "swirl/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushTokenHandlerFixtures struct {
	echo        *echo.Echo
	pushTokenUC *mockUsecase.MockPushTokenUsecase
	userID      uuid.UUID
}

func createTestPushTokenHandler(t *testing.T) pushTokenHandlerFixtures {
	pushTokenUC := mockUsecase.NewMockPushTokenUsecase(t)
	h := NewPushTokenHandler(PushTokenHandlerParams{PushTokenUC: pushTokenUC, Logger: discardLogger()})
	userID := uuid.New()

	e := newTestEcho(userID)
	e.POST("/push-tokens", h.RegisterToken)
	e.GET("/push-tokens", h.ListTokens)
	e.DELETE("/push-tokens/:token", h.DeactivateToken)

	return pushTokenHandlerFixtures{echo: e, pushTokenUC: pushTokenUC, userID: userID}
}

func TestPushTokenHandler_RegisterToken(t *testing.T) {
	fx := createTestPushTokenHandler(t)

	fx.pushTokenUC.EXPECT().
		Register(mock.Anything, fx.userID, "fcm-token-1", "ios").
		Return(&entity.PushToken{ID: uuid.New(), OwnerID: fx.userID, Token: "fcm-token-1", Device: entity.DeviceIOS, IsActive: true}, nil)

	rec, envelope := doRequest(t, fx.echo, http.MethodPost, "/push-tokens", `{"token":"fcm-token-1","device_type":"ios"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var data entity.PushToken
	decodeData(t, envelope, &data)
	assert.Equal(t, "fcm-token-1", data.Token)
	assert.Equal(t, entity.DeviceIOS, data.Device)
	assert.True(t, data.IsActive)
}

func TestPushTokenHandler_RegisterToken_DefaultDevice(t *testing.T) {
	fx := createTestPushTokenHandler(t)

	fx.pushTokenUC.EXPECT().
		Register(mock.Anything, fx.userID, "fcm-token-1", "").
		Return(&entity.PushToken{ID: uuid.New(), OwnerID: fx.userID, Token: "fcm-token-1", Device: entity.DeviceWeb, IsActive: true}, nil)

	rec, _ := doRequest(t, fx.echo, http.MethodPost, "/push-tokens", `{"token":"fcm-token-1"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPushTokenHandler_RegisterToken_Invalid(t *testing.T) {
	fx := createTestPushTokenHandler(t)

	rec, envelope := doRequest(t, fx.echo, http.MethodPost, "/push-tokens", `{"token":"x","device_type":"fridge"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)

	rec, _ = doRequest(t, fx.echo, http.MethodPost, "/push-tokens", `{"device_type":"ios"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushTokenHandler_ListTokens(t *testing.T) {
	fx := createTestPushTokenHandler(t)

	fx.pushTokenUC.EXPECT().
		ListTokens(mock.Anything, fx.userID).
		Return([]*entity.PushToken{{Token: "a", IsActive: true}, {Token: "b"}}, nil)

	rec, envelope := doRequest(t, fx.echo, http.MethodGet, "/push-tokens", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data []entity.PushToken
	decodeData(t, envelope, &data)
	assert.Len(t, data, 2)
}

func TestPushTokenHandler_DeactivateToken(t *testing.T) {
	fx := createTestPushTokenHandler(t)
	token := "abc:def/ghi"

	fx.pushTokenUC.EXPECT().Deactivate(mock.Anything, fx.userID, token).Return(nil)

	rec, _ := doRequest(t, fx.echo, http.MethodDelete, "/push-tokens/"+url.PathEscape(token), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushTokenHandler_DeactivateToken_NotFound(t *testing.T) {
	fx := createTestPushTokenHandler(t)

	fx.pushTokenUC.EXPECT().
		Deactivate(mock.Anything, fx.userID, "missing").
		Return(errors.Wrap(domainerrors.ErrPushTokenNotFound, "push token not found"))

	rec, envelope := doRequest(t, fx.echo, http.MethodDelete, "/push-tokens/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PUSH_TOKEN_NOT_FOUND", envelope.Error.Code)
}
