package jobs

import (
	"context"
	"log/slog"
	"time"

	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/usecase/shared"
)

// FinishedJobRetention is how long sent and failed notification jobs are kept.
const FinishedJobRetention = 30 * 24 * time.Hour

type CleanupResult struct {
	ExpiredInvites int64
	FinishedJobs   int64
}

type Cleanup struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewCleanup(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) *Cleanup {
	return &Cleanup{
		uow:    uow,
		clock:  clock,
		logger: logger,
	}
}

// Run removes unused invites past their expiry and finished outbox rows past retention.
func (c *Cleanup) Run(ctx context.Context) (CleanupResult, error) {
	var result CleanupResult
	now := c.clock.Now()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		invites, err := tx.Invites().DeleteExpired(ctx, now)
		if err != nil {
			return err
		}
		jobs, err := tx.Notifications().DeleteFinishedBefore(ctx, now.Add(-FinishedJobRetention))
		if err != nil {
			return err
		}
		result = CleanupResult{ExpiredInvites: invites, FinishedJobs: jobs}
		return nil
	})
	if err != nil {
		return CleanupResult{}, err
	}

	c.logger.Info("cleanup finished", "expired_invites", result.ExpiredInvites, "finished_jobs", result.FinishedJobs)
	return result, nil
}
