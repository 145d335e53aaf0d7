package main

import (
	"context"
	"log/slog"
	"os"

	"swirl/config"
	"swirl/internal/delivery"
	"swirl/internal/delivery/worker"
	"swirl/internal/delivery/worker/handler"
	logs "swirl/internal/infra/log"
	"swirl/internal/infra/mail"
	"swirl/internal/infra/mailtemplate"
	"swirl/internal/infra/notification"
	"swirl/internal/infra/persistence/postgres"
	"swirl/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// The dispatcher consumes delivery events published by the API in async mode.
// It never publishes, so no EventPublisher is provided.
func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectChannel(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPostRepository,
			postgres.NewNotificationRepository,
			postgres.NewPushTokenRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewPushService,
			mail.NewMailer,
			mailtemplate.NewTemplateRenderer,
			impl.NewLinkResolver,
		),
	)
}

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
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
