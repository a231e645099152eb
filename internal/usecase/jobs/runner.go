package jobs

import (
	"context"
	"log/slog"
	"time"
)

// RunTimeout bounds a single scheduled run.
const RunTimeout = 2 * time.Minute

// Runner adapts the jobs to the scheduler's func() entries.
type Runner struct {
	dispatcher *NotificationDispatcher
	cleanup    *Cleanup
	logger     *slog.Logger
}

func NewRunner(dispatcher *NotificationDispatcher, cleanup *Cleanup, logger *slog.Logger) *Runner {
	return &Runner{
		dispatcher: dispatcher,
		cleanup:    cleanup,
		logger:     logger,
	}
}

func (r *Runner) DispatchNotifications() {
	r.runWithRecovery("DispatchNotifications", func(ctx context.Context) error {
		result, err := r.dispatcher.DispatchDue(ctx)
		if result.Claimed > 0 {
			r.logger.Info("notifications dispatched",
				"claimed", result.Claimed, "sent", result.Sent, "retried", result.Retried, "failed", result.Failed)
		}
		return err
	})
}

func (r *Runner) Cleanup() {
	r.runWithRecovery("Cleanup", func(ctx context.Context) error {
		_, err := r.cleanup.Run(ctx)
		return err
	})
}

func (r *Runner) runWithRecovery(jobName string, fn func(ctx context.Context) error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("job panicked", "job", jobName, "panic", rec)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), RunTimeout)
	defer cancel()

	r.logger.Debug("starting job", "job", jobName)
	if err := fn(ctx); err != nil {
		r.logger.Error("job failed", "job", jobName, "error", err.Error())
		return
	}
	r.logger.Debug("job completed", "job", jobName)
}
