package impl

import (
	"context"
	"log/slog"
	"time"

	"swirl/config"
	deliverycontext "swirl/internal/delivery/context"
	"swirl/internal/domain/constants"
	"swirl/internal/domain/entity"
	"swirl/internal/domain/repository"
	"swirl/internal/domain/service"
	"swirl/internal/usecase"

	"go.uber.org/fx"
)

type pushChannel struct {
	tokenRepo repository.PushTokenRepository
	push      service.PushService
	timeout   time.Duration
	logger    *slog.Logger
}

// PushChannelParams holds dependencies for the push channel, injected by Fx.
type PushChannelParams struct {
	fx.In

	TokenRepo   repository.PushTokenRepository
	PushService service.PushService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPushChannel creates the channel that delivers notifications to the recipient's devices
func NewPushChannel(params PushChannelParams) usecase.Channel {
	timeout := defaultChannelTimeout
	if params.Config != nil && params.Config.Notification != nil && params.Config.Notification.PushTimeout > 0 {
		timeout = params.Config.Notification.PushTimeout
	}

	return &pushChannel{
		tokenRepo: params.TokenRepo,
		push:      params.PushService,
		timeout:   timeout,
		logger:    params.Logger,
	}
}

func (ch *pushChannel) Name() entity.Channel {
	return entity.ChannelPush
}

// Send multicasts the message to every active token of the recipient.
// It succeeds when at least one device accepted the message.
func (ch *pushChannel) Send(ctx context.Context, msg *usecase.Message) bool {
	logger := deliverycontext.GetLoggerOrDefault(ctx, ch.logger).With(
		slog.String("channel", string(entity.ChannelPush)),
		slog.Any("notification_id", msg.Notification.ID),
	)

	tokens, err := ch.tokenRepo.FindActiveTokensByOwner(ctx, msg.Notification.RecipientID)
	if err != nil {
		logger.Error("Failed to load push tokens", slog.Any("error", err))

		return false
	}
	if len(tokens) == 0 {
		logger.Debug("No deliverable endpoint")

		return false
	}

	registrations := make([]string, 0, len(tokens))
	for _, token := range tokens {
		registrations = append(registrations, token.Token)
	}

	title := msg.Subject()
	body := msg.PushBody()
	data := map[string]string{
		constants.PushDataNotificationID: msg.Notification.ID.String(),
		constants.PushDataActionType:     string(msg.Notification.Action),
		constants.PushDataType:           constants.PushDataTypeValue,
	}

	sendCtx, cancel := context.WithTimeout(ctx, ch.timeout)
	defer cancel()

	var (
		totalSent    int
		totalFailed  int
		unregistered []string
	)

	for i := 0; i < len(registrations); i += service.MaxPushBatchSize {
		end := min(i+service.MaxPushBatchSize, len(registrations))
		batch := registrations[i:end]

		successCount, failureCount, dead, err := ch.push.SendBatchNotification(sendCtx, batch, title, body, data)
		if err != nil {
			// Log error but continue with other batches
			logger.Warn("Failed to send push batch", slog.Any("error", err), slog.Int("batch_size", len(batch)))
			totalFailed += len(batch)

			continue
		}

		totalSent += successCount
		totalFailed += failureCount
		unregistered = append(unregistered, dead...)
	}

	if len(unregistered) > 0 {
		if err := ch.tokenRepo.DeactivateTokens(ctx, unregistered); err != nil {
			logger.Error("Failed to deactivate unregistered tokens", slog.Any("error", err), slog.Int("count", len(unregistered)))
		} else {
			logger.Info("Deactivated unregistered tokens", slog.Int("count", len(unregistered)))
		}
	}

	logger.Debug("Push delivery finished", slog.Int("sent", totalSent), slog.Int("failed", totalFailed))

	return totalSent > 0
}
