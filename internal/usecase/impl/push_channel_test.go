package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"swirl/config"
	"swirl/internal/domain/entity"
	mockRepo "swirl/internal/mocks/repository"
	mockService "swirl/internal/mocks/service"
	"swirl/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestPushChannel(t *testing.T) (usecase.Channel, *mockRepo.MockPushTokenRepository, *mockService.MockPushService) {
	tokenRepo := mockRepo.NewMockPushTokenRepository(t)
	pushService := mockService.NewMockPushService(t)

	ch := NewPushChannel(PushChannelParams{
		TokenRepo:   tokenRepo,
		PushService: pushService,
		Config:      &config.Config{Notification: &config.NotificationConfig{}},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return ch, tokenRepo, pushService
}

func activeTokens(owner uuid.UUID, values ...string) []*entity.PushToken {
	tokens := make([]*entity.PushToken, 0, len(values))
	for _, v := range values {
		tokens = append(tokens, &entity.PushToken{ID: uuid.New(), OwnerID: owner, Token: v, Device: entity.DeviceWeb, IsActive: true})
	}

	return tokens
}

func TestPushChannel_Send_NoTokens(t *testing.T) {
	ch, tokenRepo, _ := createTestPushChannel(t)
	msg := newTestMessage(entity.ActionReaction)

	tokenRepo.EXPECT().FindActiveTokensByOwner(mock.Anything, msg.Notification.RecipientID).Return([]*entity.PushToken{}, nil)

	assert.Equal(t, entity.ChannelPush, ch.Name())
	assert.False(t, ch.Send(context.Background(), msg))
}

func TestPushChannel_Send_PayloadAndUnregisteredCleanup(t *testing.T) {
	ch, tokenRepo, pushService := createTestPushChannel(t)
	msg := newTestMessage(entity.ActionSignUp)
	owner := msg.Notification.RecipientID

	tokenRepo.EXPECT().FindActiveTokensByOwner(mock.Anything, owner).Return(activeTokens(owner, "tok-a", "tok-b", "tok-c"), nil)
	pushService.EXPECT().
		SendBatchNotification(
			mock.Anything,
			[]string{"tok-a", "tok-b", "tok-c"},
			"Welcome to Swirl!",
			"Welcome to Swirl! Get started by exploring posts.",
			map[string]string{
				"notification_id": msg.Notification.ID.String(),
				"action_type":     "sign_up",
				"type":            "notification",
			},
		).
		Return(1, 2, []string{"tok-b"}, nil)
	tokenRepo.EXPECT().DeactivateTokens(mock.Anything, []string{"tok-b"}).Return(nil)

	assert.True(t, ch.Send(context.Background(), msg))
}

func TestPushChannel_Send_AllFailed(t *testing.T) {
	ch, tokenRepo, pushService := createTestPushChannel(t)
	msg := newTestMessage(entity.ActionFollow)
	owner := msg.Notification.RecipientID

	tokenRepo.EXPECT().FindActiveTokensByOwner(mock.Anything, owner).Return(activeTokens(owner, "tok-a"), nil)
	pushService.EXPECT().
		SendBatchNotification(mock.Anything, []string{"tok-a"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 1, []string{}, nil)

	assert.False(t, ch.Send(context.Background(), msg))
}

func TestPushChannel_Send_BatchesLargeTokenSets(t *testing.T) {
	ch, tokenRepo, pushService := createTestPushChannel(t)
	msg := newTestMessage(entity.ActionComment)
	owner := msg.Notification.RecipientID

	values := make([]string, 0, 501)
	for i := range 501 {
		values = append(values, fmt.Sprintf("tok-%d", i))
	}

	tokenRepo.EXPECT().FindActiveTokensByOwner(mock.Anything, owner).Return(activeTokens(owner, values...), nil)
	pushService.EXPECT().
		SendBatchNotification(mock.Anything, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 500 }), mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("quota exceeded")).
		Once()
	pushService.EXPECT().
		SendBatchNotification(mock.Anything, []string{"tok-500"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil).
		Once()

	assert.True(t, ch.Send(context.Background(), msg))
}

func TestPushChannel_Send_TokenLookupFailure(t *testing.T) {
	ch, tokenRepo, _ := createTestPushChannel(t)
	msg := newTestMessage(entity.ActionFollow)

	tokenRepo.EXPECT().FindActiveTokensByOwner(mock.Anything, msg.Notification.RecipientID).Return(nil, errors.New("db down"))

	assert.False(t, ch.Send(context.Background(), msg))
}
