package bootstrap

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/infra/migrations"
	"parkspace-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// MigrationModule brings the schema up before the pool is handed out.
var MigrationModule = fx.Module("migration",
	fx.Invoke(RunMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func RunMigrations(cfg config.Config, logger *slog.Logger) error {
	if !cfg.Migration.OnStart {
		logger.Info("skipping migrations on start")
		return nil
	}
	return migrations.Up(cfg.DB.BuildDSN(), logger)
}
