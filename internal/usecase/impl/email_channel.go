package impl

import (
	"context"
	"log/slog"
	"time"

	"swirl/config"
	deliverycontext "swirl/internal/delivery/context"
	"swirl/internal/domain/entity"
	"swirl/internal/domain/service"
	"swirl/internal/usecase"

	"go.uber.org/fx"
)

const defaultChannelTimeout = 10 * time.Second

type emailChannel struct {
	mailer   service.Mailer
	renderer service.TemplateRenderer
	timeout  time.Duration
	logger   *slog.Logger
}

// EmailChannelParams holds dependencies for the email channel, injected by Fx.
type EmailChannelParams struct {
	fx.In

	Mailer   service.Mailer
	Renderer service.TemplateRenderer
	Config   *config.Config
	Logger   *slog.Logger
}

// NewEmailChannel creates the channel that delivers notifications by email
func NewEmailChannel(params EmailChannelParams) usecase.Channel {
	timeout := defaultChannelTimeout
	if params.Config != nil && params.Config.Notification != nil && params.Config.Notification.EmailTimeout > 0 {
		timeout = params.Config.Notification.EmailTimeout
	}

	return &emailChannel{
		mailer:   params.Mailer,
		renderer: params.Renderer,
		timeout:  timeout,
		logger:   params.Logger,
	}
}

func (ch *emailChannel) Name() entity.Channel {
	return entity.ChannelEmail
}

// Send renders the action's template and mails it to the recipient
func (ch *emailChannel) Send(ctx context.Context, msg *usecase.Message) bool {
	logger := deliverycontext.GetLoggerOrDefault(ctx, ch.logger).With(
		slog.String("channel", string(entity.ChannelEmail)),
		slog.Any("notification_id", msg.Notification.ID),
	)

	if msg.Recipient == nil || msg.Recipient.Email == "" {
		logger.Warn("Recipient has no email address")

		return false
	}

	ctx, cancel := context.WithTimeout(ctx, ch.timeout)
	defer cancel()

	body, err := ch.renderer.RenderEmail(ctx, msg.Notification.Action, &service.EmailData{
		Recipient:    msg.Recipient,
		Actor:        msg.Actor,
		Notification: msg.Notification,
		URL:          msg.URL,
	})
	if err != nil {
		logger.Error("Failed to render email", slog.Any("error", err))

		return false
	}

	if err := ch.mailer.Send(ctx, &service.EmailMessage{
		To:      msg.Recipient.Email,
		Subject: msg.Subject(),
		HTML:    body.HTML,
		Text:    body.Text,
	}); err != nil {
		logger.Error("Failed to send email", slog.Any("error", err))

		return false
	}

	logger.Debug("Email sent")

	return true
}
