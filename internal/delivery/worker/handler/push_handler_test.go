package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"swirl/config"
	deliverycontext "swirl/internal/delivery/context"
	"swirl/internal/domain/constants"
	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/service"
	mockUsecase "swirl/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockDeliveryUsecase) {
	deliveryUC := mockUsecase.NewMockDeliveryUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DeliveryUC: deliveryUC,
	})

	return h, deliveryUC
}

func pushBody(t *testing.T, event service.DeliveryEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_ProcessesEvent(t *testing.T) {
	h, deliveryUC := newTestPushHandler(t, nil)
	event := service.DeliveryEvent{NotificationID: "7f1f4a1e-5d1d-4c4b-9d2c-1f2e3d4c5b6a", Channels: []string{"push"}}

	deliveryUC.EXPECT().
		ProcessDeliveryEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
		}), mock.MatchedBy(func(e *service.DeliveryEvent) bool {
			return e.NotificationID == event.NotificationID && assert.ObjectsAreEqual(event.Channels, e.Channels)
		})).
		Return(nil)

	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-42"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// Redelivering a malformed message can never succeed, so it is acknowledged and dropped.
func TestPushHandler_MalformedPayloadIsAcknowledged(t *testing.T) {
	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))

	tests := []struct {
		name string
		body string
	}{
		{name: "envelope is not JSON", body: `{"message":`},
		{name: "data is not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "event is not JSON", body: `{"message":{"data":"` + notJSON + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deliveryUC := newTestPushHandler(t, nil)

			rec := servePush(h, tt.body, nil)
			assert.Equal(t, http.StatusOK, rec.Code)
			deliveryUC.AssertNotCalled(t, "ProcessDeliveryEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_ErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid event acknowledged", err: errors.Wrap(domainerrors.ErrValidationFailed, "bad id"), status: http.StatusOK},
		{name: "missing notification acknowledged", err: errors.Wrap(domainerrors.ErrNotificationNotFound, "gone"), status: http.StatusOK},
		{name: "missing user acknowledged", err: errors.Wrap(domainerrors.ErrUserNotFound, "gone"), status: http.StatusOK},
		{name: "store failure redelivered", err: errors.New("connection refused"), status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deliveryUC := newTestPushHandler(t, nil)
			deliveryUC.EXPECT().ProcessDeliveryEvent(mock.Anything, mock.Anything).Return(tt.err)

			rec := servePush(h, pushBody(t, service.DeliveryEvent{NotificationID: "x"}, nil), nil)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.swirl.test/push",
	}}
	cfg.Env.Env = constants.EnvProduction

	h, deliveryUC := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad token")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	body := pushBody(t, service.DeliveryEvent{NotificationID: "x"}, nil)

	rec := servePush(h, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, http.Header{"Authorization": []string{"Bearer bad"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	deliveryUC.EXPECT().ProcessDeliveryEvent(mock.Anything, mock.Anything).Return(nil)
	rec = servePush(h, body, http.Header{"Authorization": []string{"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://worker.swirl.test/push", gotAudience)
}

func TestPushHandler_RejectsForeignIssuer(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvStaging

	h, _ := newTestPushHandler(t, cfg)
	h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
	}

	rec := servePush(h, pushBody(t, service.DeliveryEvent{NotificationID: "x"}, nil), http.Header{"Authorization": []string{"Bearer t"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_DevelopSkipsVerification(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)
	assert.False(t, h.verifyPushAuth)
}
