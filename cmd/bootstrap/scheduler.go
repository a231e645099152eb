package bootstrap

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/infra/scheduler"
	"parkspace-booking/internal/pkg/config"
	"parkspace-booking/internal/usecase/jobs"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewDispatchSettings,
		jobs.NewNotificationDispatcher,
		jobs.NewCleanup,
		jobs.NewRunner,
		scheduler.New,
	),
	fx.Invoke(startScheduler),
)

func NewDispatchSettings(cfg config.Config) jobs.DispatchSettings {
	return jobs.DispatchSettings{
		MaxAttempts: cfg.Scheduler.NotificationMaxAttempts,
		BatchSize:   cfg.Scheduler.NotificationBatchSize,
	}
}

func startScheduler(lc fx.Lifecycle, cfg config.Config, s *scheduler.Scheduler, logger *slog.Logger) {
	if !cfg.Scheduler.Enabled {
		logger.Info("scheduler disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
