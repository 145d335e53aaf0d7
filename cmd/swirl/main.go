package main

import (
	"context"
	"log/slog"
	"os"

	"swirl/config"
	"swirl/internal/delivery"
	"swirl/internal/delivery/api"
	"swirl/internal/delivery/api/middleware"
	"swirl/internal/delivery/api/router/handler"
	"swirl/internal/infra/auth"
	logs "swirl/internal/infra/log"
	"swirl/internal/infra/mail"
	"swirl/internal/infra/mailtemplate"
	"swirl/internal/infra/notification"
	"swirl/internal/infra/persistence/postgres"
	"swirl/internal/infra/pubsub"
	"swirl/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectChannel(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPostRepository,
			postgres.NewNotificationRepository,
			postgres.NewPushTokenRepository,
			postgres.NewCommentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			notification.NewPushService,
			mail.NewMailer,
			mailtemplate.NewTemplateRenderer,
			impl.NewLinkResolver,
		),
	)
}

// injectChannel registers every delivery channel in the "channels" group
func injectChannel() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				impl.NewEmailChannel,
				fx.ResultTags(`group:"channels"`),
			),
			fx.Annotate(
				impl.NewPushChannel,
				fx.ResultTags(`group:"channels"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeliveryService,
			impl.NewNotificationService,
			impl.NewPushTokenService,
			impl.NewCommentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotificationHandler,
			handler.NewPushTokenHandler,
			handler.NewCommentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
