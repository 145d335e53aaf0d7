package impl

import (
	"context"
	"log/slog"

	"swirl/config"
	deliverycontext "swirl/internal/delivery/context"
	"swirl/internal/domain/entity"
	"swirl/internal/domain/repository"
	"swirl/internal/domain/service"
)

const notificationsPath = "/notifications"

type linkResolver struct {
	frontendURL string
	postRepo    repository.PostRepository
	logger      *slog.Logger
}

// NewLinkResolver creates a resolver that builds frontend URLs for notification targets
func NewLinkResolver(cfg *config.Config, postRepo repository.PostRepository, logger *slog.Logger) service.LinkResolver {
	frontendURL := ""
	if cfg != nil && cfg.Notification != nil {
		frontendURL = cfg.Notification.FrontendURL
	}

	return &linkResolver{
		frontendURL: frontendURL,
		postRepo:    postRepo,
		logger:      logger,
	}
}

// Resolve prefers the target's own display path and falls back to its id-based path
func (r *linkResolver) Resolve(ctx context.Context, target entity.Target) string {
	if target == nil {
		return r.frontendURL + notificationsPath
	}

	if postTarget, ok := target.(entity.PostTarget); ok && r.postRepo != nil {
		post, err := r.postRepo.FindByID(ctx, postTarget.PostID)
		if err == nil {
			if path, ok := post.DisplayPath(); ok {
				return r.frontendURL + path
			}
		} else {
			deliverycontext.GetLoggerOrDefault(ctx, r.logger).Debug("Post lookup failed while resolving link",
				slog.Any("error", err), slog.Any("post_id", postTarget.PostID))
		}
	}

	return r.frontendURL + target.DefaultPath()
}
