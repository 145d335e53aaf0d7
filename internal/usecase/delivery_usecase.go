package usecase

import (
	"context"

	"swirl/internal/domain/entity"
	"swirl/internal/domain/service"
)

// DeliveryUsecase fans a stored notification out to its channels
type DeliveryUsecase interface {
	// Dispatch delivers the notification inline or hands it to the worker,
	// depending on the configured dispatch mode. Flags on n reflect what was
	// delivered before Dispatch returned.
	Dispatch(ctx context.Context, n *entity.Notification, channels []entity.Channel)

	// Deliver attempts every requested channel once and records the successes on n.
	Deliver(ctx context.Context, n *entity.Notification, channels []entity.Channel)

	// ProcessDeliveryEvent is the worker side of an async dispatch
	ProcessDeliveryEvent(ctx context.Context, event *service.DeliveryEvent) error

	// Channels lists the registered channel names
	Channels() []entity.Channel
}
