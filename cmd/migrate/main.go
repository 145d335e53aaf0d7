package main

import (
	"context"
	"log/slog"

	"swirl/config"
	logs "swirl/internal/infra/log"
	"swirl/internal/infra/persistence/model"
	"swirl/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

// Creates or updates the schema, then exits.
func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	).Run()
}

func migrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.DB.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}

			params.Logger.Info("Schema migrated", slog.Int("models", len(model.All())))

			return params.Shutdown()
		},
	})
}
