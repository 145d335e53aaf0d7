package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"swirl/config"
	"swirl/internal/domain/entity"
	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/repository"
	mockRepo "swirl/internal/mocks/repository"
	mockUsecase "swirl/internal/mocks/usecase"
	"swirl/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	delivery         *mockUsecase.MockDeliveryUsecase
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	delivery := mockUsecase.NewMockDeliveryUsecase(t)

	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Delivery:         delivery,
		Config: &config.Config{
			Notification: &config.NotificationConfig{DefaultPageSize: 20, MaxPageSize: 50},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
		delivery:         delivery,
	}
}

func TestNotificationService_Notify_SelfReactionIsSuppressed(t *testing.T) {
	fx := createTestNotificationService(t)
	userID := uuid.New()

	n, err := fx.service.Notify(context.Background(), &usecase.NotifyRequest{
		RecipientID: userID,
		ActorID:     userID,
		Action:      entity.ActionReaction,
		Target:      entity.PostTarget{PostID: uuid.New()},
	})

	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestNotificationService_Notify_SelfAccountEventIsStored(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.delivery.EXPECT().Channels().Return([]entity.Channel{entity.ChannelEmail, entity.ChannelPush})
	fx.delivery.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Notification"), []entity.Channel{entity.ChannelEmail, entity.ChannelPush}).
		Return()

	n, err := fx.service.Notify(ctx, &usecase.NotifyRequest{
		RecipientID: userID,
		ActorID:     userID,
		Action:      entity.ActionSignUp,
	})

	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, entity.ActionSignUp, n.Action)
	assert.False(t, n.HasTarget())
}

func TestNotificationService_Notify_CrossUserReactionReflectsChannelOutcome(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	recipient, actor := uuid.New(), uuid.New()
	target := entity.PostTarget{PostID: uuid.New()}

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.RecipientID == recipient && n.ActorID == actor && n.Target == target && !n.IsRead
		})).
		Return(nil).
		Once()
	fx.delivery.EXPECT().Channels().Return([]entity.Channel{entity.ChannelEmail, entity.ChannelPush})
	fx.delivery.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Notification"), mock.Anything).
		Run(func(_ context.Context, n *entity.Notification, _ []entity.Channel) {
			// email succeeded, push had no endpoint
			n.MarkSent(entity.ChannelEmail)
		}).
		Return()

	n, err := fx.service.Notify(ctx, &usecase.NotifyRequest{
		RecipientID: recipient,
		ActorID:     actor,
		Action:      entity.ActionReaction,
		Target:      target,
	})

	require.NoError(t, err)
	require.NotNil(t, n)
	assert.True(t, n.EmailSent)
	assert.False(t, n.PushSent)
}

func TestNotificationService_Notify_EmptyChannelsSkipsDelivery(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	n, err := fx.service.Notify(ctx, &usecase.NotifyRequest{
		RecipientID: uuid.New(),
		ActorID:     uuid.New(),
		Action:      entity.ActionFollow,
		Channels:    []entity.Channel{},
	})

	require.NoError(t, err)
	require.NotNil(t, n)
	assert.False(t, n.EmailSent)
	assert.False(t, n.PushSent)
}

func TestNotificationService_Notify_ExplicitChannels(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.delivery.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Notification"), []entity.Channel{entity.ChannelPush}).
		Return()

	_, err := fx.service.Notify(ctx, &usecase.NotifyRequest{
		RecipientID: uuid.New(),
		ActorID:     uuid.New(),
		Action:      entity.ActionBookmark,
		Target:      entity.PostTarget{PostID: uuid.New()},
		Channels:    []entity.Channel{entity.ChannelPush},
	})
	require.NoError(t, err)
}

func TestNotificationService_Notify_StoreFailureYieldsNoNotification(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("insert failed"))

	n, err := fx.service.Notify(ctx, &usecase.NotifyRequest{
		RecipientID: uuid.New(),
		ActorID:     uuid.New(),
		Action:      entity.ActionFollow,
	})

	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestNotificationService_Notify_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *usecase.NotifyRequest
	}{
		{name: "nil request", req: nil},
		{name: "missing recipient", req: &usecase.NotifyRequest{ActorID: uuid.New(), Action: entity.ActionFollow}},
		{name: "missing actor", req: &usecase.NotifyRequest{RecipientID: uuid.New(), Action: entity.ActionFollow}},
		{name: "unknown action", req: &usecase.NotifyRequest{RecipientID: uuid.New(), ActorID: uuid.New(), Action: "poke"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)

			n, err := fx.service.Notify(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, n)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestNotificationService_ListNotifications_ClampsPaging(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().FindNotificationsByRecipient(ctx, userID, 20, 0).Return([]*entity.Notification{}, nil).Once()
	fx.notificationRepo.EXPECT().FindNotificationsByRecipient(ctx, userID, 50, 10).Return([]*entity.Notification{}, nil).Once()

	_, err := fx.service.ListNotifications(ctx, userID, 0, -5)
	require.NoError(t, err)
	_, err = fx.service.ListNotifications(ctx, userID, 500, 10)
	require.NoError(t, err)
}

func TestNotificationService_MarkRead(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	unread := &entity.Notification{ID: uuid.New(), RecipientID: userID}

	fx.notificationRepo.EXPECT().FindNotificationForRecipient(ctx, unread.ID, userID).Return(unread, nil)
	fx.notificationRepo.EXPECT().MarkRead(ctx, unread.ID).Return(nil).Once()

	result, err := fx.service.MarkRead(ctx, userID, unread.ID)
	require.NoError(t, err)
	assert.False(t, result.AlreadyRead)
	assert.True(t, result.Notification.IsRead)
}

func TestNotificationService_MarkRead_AlreadyReadIsSuccess(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	read := &entity.Notification{ID: uuid.New(), RecipientID: userID, IsRead: true}

	fx.notificationRepo.EXPECT().FindNotificationForRecipient(ctx, read.ID, userID).Return(read, nil)

	result, err := fx.service.MarkRead(ctx, userID, read.ID)
	require.NoError(t, err)
	assert.True(t, result.AlreadyRead)
	assert.True(t, result.Notification.IsRead)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID, id := uuid.New(), uuid.New()

	fx.notificationRepo.EXPECT().FindNotificationForRecipient(ctx, id, userID).Return(nil, repository.ErrNotificationNotFound)

	_, err := fx.service.MarkRead(ctx, userID, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_UnreadCount(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(3), nil)

	count, err := fx.service.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
