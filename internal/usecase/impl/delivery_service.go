package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"swirl/config"
	deliverycontext "swirl/internal/delivery/context"
	"swirl/internal/domain/entity"
	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/repository"
	"swirl/internal/domain/service"
	"swirl/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultDispatchTimeout = 8 * time.Second

type deliveryService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	links            service.LinkResolver
	publisher        service.EventPublisher
	channels         map[entity.Channel]usecase.Channel
	names            []entity.Channel
	async            bool
	dispatchTimeout  time.Duration
	logger           *slog.Logger
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	Links            service.LinkResolver
	Publisher        service.EventPublisher `optional:"true"`
	Channels         []usecase.Channel      `group:"channels"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewDeliveryService creates a new delivery service over the registered channels
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	srv := &deliveryService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		links:            params.Links,
		publisher:        params.Publisher,
		channels:         make(map[entity.Channel]usecase.Channel, len(params.Channels)),
		dispatchTimeout:  defaultDispatchTimeout,
		logger:           params.Logger,
	}

	for _, ch := range params.Channels {
		if ch == nil {
			continue
		}
		if _, dup := srv.channels[ch.Name()]; !dup {
			srv.names = append(srv.names, ch.Name())
		}
		srv.channels[ch.Name()] = ch
	}
	// email before push
	slices.Sort(srv.names)

	if params.Config != nil && params.Config.Notification != nil {
		srv.async = params.Config.Notification.DispatchMode == config.DispatchModeAsync
		if params.Config.Notification.DispatchTimeout > 0 {
			srv.dispatchTimeout = params.Config.Notification.DispatchTimeout
		}
	}

	return srv
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Channels lists the registered channel names
func (srv *deliveryService) Channels() []entity.Channel {
	return slices.Clone(srv.names)
}

// Dispatch delivers inline, or publishes a delivery event when running in async mode.
// A failed publish falls back to inline delivery.
func (srv *deliveryService) Dispatch(ctx context.Context, n *entity.Notification, channels []entity.Channel) {
	if !srv.async || srv.publisher == nil {
		srv.Deliver(ctx, n, channels)

		return
	}

	event := &service.DeliveryEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: n.ID.String(),
		Channels:       make([]string, 0, len(channels)),
	}
	for _, ch := range channels {
		event.Channels = append(event.Channels, string(ch))
	}

	if err := srv.publisher.PublishDeliveryEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish delivery event, delivering inline",
			slog.Any("error", err), slog.Any("notification_id", n.ID))
		srv.Deliver(ctx, n, channels)

		return
	}

	srv.log(ctx).Debug("Delivery event published", slog.Any("notification_id", n.ID))
}

// Deliver attempts every requested channel once and records the successes on n.
// Channels send concurrently under one deadline; the caller's cancellation does not cut them short.
func (srv *deliveryService) Deliver(ctx context.Context, n *entity.Notification, channels []entity.Channel) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.dispatchTimeout)
	defer cancel()

	recipient, err := srv.userRepo.FindByID(ctx, n.RecipientID)
	if err != nil {
		srv.log(ctx).Error("Failed to load notification recipient",
			slog.Any("error", err), slog.Any("notification_id", n.ID), slog.Any("recipient_id", n.RecipientID))

		return
	}

	actor, err := srv.userRepo.FindByID(ctx, n.ActorID)
	if err != nil {
		// The message still reads fine with a generic actor name.
		srv.log(ctx).Warn("Failed to load notification actor", slog.Any("error", err), slog.Any("actor_id", n.ActorID))
		actor = nil
	}

	msg := &usecase.Message{
		Notification: n,
		Recipient:    recipient,
		Actor:        actor,
		URL:          srv.links.Resolve(ctx, n.Target),
	}

	pending := srv.pendingChannels(ctx, n, channels)
	delivered := make([]bool, len(pending))

	var g errgroup.Group
	for i, ch := range pending {
		g.Go(func() error {
			delivered[i] = ch.Send(ctx, msg)

			return nil
		})
	}
	_ = g.Wait()

	// Successful sends are recorded even when the deadline has passed.
	recordCtx := context.WithoutCancel(ctx)
	for i, ch := range pending {
		name := ch.Name()
		if !delivered[i] {
			srv.log(ctx).Info("Channel delivery failed",
				slog.String("channel", string(name)), slog.Any("notification_id", n.ID))

			continue
		}

		if err := srv.notificationRepo.MarkChannelSent(recordCtx, n.ID, name); err != nil {
			srv.log(ctx).Error("Failed to record channel delivery",
				slog.Any("error", err), slog.String("channel", string(name)), slog.Any("notification_id", n.ID))

			continue
		}
		n.MarkSent(name)
	}
}

// pendingChannels resolves the requested names to registered channels not yet sent on, without duplicates
func (srv *deliveryService) pendingChannels(ctx context.Context, n *entity.Notification, names []entity.Channel) []usecase.Channel {
	seen := make(map[entity.Channel]bool, len(names))
	pending := make([]usecase.Channel, 0, len(names))

	for _, name := range names {
		if seen[name] || n.Sent(name) {
			continue
		}
		seen[name] = true

		ch, ok := srv.channels[name]
		if !ok {
			srv.log(ctx).Warn("Skipping unregistered channel", slog.String("channel", string(name)))

			continue
		}
		pending = append(pending, ch)
	}

	return pending
}

// ProcessDeliveryEvent loads the stored notification and delivers the channels it has not been sent on yet
func (srv *deliveryService) ProcessDeliveryEvent(ctx context.Context, event *service.DeliveryEvent) error {
	if event == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "delivery event is required")
	}

	id, err := uuid.Parse(event.NotificationID)
	if err != nil {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "invalid notification id %q", event.NotificationID)
	}

	n, err := srv.notificationRepo.FindNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
		}

		return errors.Wrap(err, "failed to find notification")
	}

	channels := srv.Channels()
	if event.Channels != nil {
		channels = make([]entity.Channel, 0, len(event.Channels))
		for _, raw := range event.Channels {
			channels = append(channels, entity.Channel(raw))
		}
	}

	srv.Deliver(ctx, n, channels)
	srv.log(ctx).Info("Delivery event processed",
		slog.Any("notification_id", n.ID),
		slog.Bool("email_sent", n.EmailSent),
		slog.Bool("push_sent", n.PushSent))

	return nil
}
