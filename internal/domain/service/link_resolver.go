package service

import (
	"context"

	"swirl/internal/domain/entity"
)

// LinkResolver turns a notification target into an absolute frontend URL.
type LinkResolver interface {
	// Resolve never fails; unknown or missing targets resolve to the notifications page.
	Resolve(ctx context.Context, target entity.Target) string
}
