package scheduler

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/pkg/config"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/usecase/jobs"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the background jobs on cron specs with seconds precision.
type Scheduler struct {
	cron   *cron.Cron
	runner *jobs.Runner
	logger *slog.Logger
}

func New(cfg config.Config, runner *jobs.Runner, logger *slog.Logger) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(cfg.DB.Location()),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:   c,
		runner: runner,
		logger: logger,
	}
	if err := s.registerJobs(cfg.Scheduler); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) registerJobs(cfg config.SchedulerConfig) error {
	if _, err := s.cron.AddFunc(cfg.NotificationDispatch, s.runner.DispatchNotifications); err != nil {
		return errs.Wrapf(err, "invalid notification dispatch spec %q", cfg.NotificationDispatch)
	}
	if _, err := s.cron.AddFunc(cfg.Cleanup, s.runner.Cleanup); err != nil {
		return errs.Wrapf(err, "invalid cleanup spec %q", cfg.Cleanup)
	}
	s.logger.Info("cron jobs registered", "entries", len(s.cron.Entries()))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("cron scheduler started")
}

// Stop waits for running jobs to finish or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("cron scheduler stopped")
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "cron jobs still running")
	}
}

// Entries reports how many jobs are registered.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
