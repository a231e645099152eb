package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	// LeaseDuration keeps a claimed job away from other dispatchers while it is sent.
	LeaseDuration  = 5 * time.Minute
	BaseRetryDelay = time.Minute
)

var ErrUnknownNotification = errs.New("unknown notification kind")

type Mailer interface {
	Send(ctx context.Context, msg shared.EmailMessage) error
}

type DispatchSettings struct {
	MaxAttempts int
	BatchSize   int
}

type DispatchResult struct {
	Claimed int
	Sent    int
	Retried int
	Failed  int
}

// NotificationDispatcher drains the notification outbox. Delivery is at least once:
// a crash between sending and MarkSent resends the job once its lease expires.
type NotificationDispatcher struct {
	uow      shared.UnitOfWork
	mailer   Mailer
	settings DispatchSettings
	clock    clock.Clock
	logger   *slog.Logger
}

func NewNotificationDispatcher(uow shared.UnitOfWork, mailer Mailer, settings DispatchSettings, clock clock.Clock, logger *slog.Logger) *NotificationDispatcher {
	if settings.MaxAttempts < 1 {
		settings.MaxAttempts = 1
	}
	if settings.BatchSize < 1 {
		settings.BatchSize = 20
	}
	return &NotificationDispatcher{
		uow:      uow,
		mailer:   mailer,
		settings: settings,
		clock:    clock,
		logger:   logger,
	}
}

func (d *NotificationDispatcher) DispatchDue(ctx context.Context) (DispatchResult, error) {
	var result DispatchResult
	now := d.clock.Now()

	var claimed []shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		claimed, err = tx.Notifications().ClaimDue(ctx, now, now.Add(LeaseDuration), d.settings.BatchSize)
		return err
	})
	if err != nil {
		return result, errs.Wrap(err, "failed to claim notification jobs")
	}
	result.Claimed = len(claimed)

	for _, job := range claimed {
		sendErr := d.deliver(ctx, job)
		if sendErr == nil {
			if err := d.markSent(ctx, job.ID); err != nil {
				return result, err
			}
			result.Sent++
			continue
		}

		retryAt := d.nextAttempt(job, sendErr)
		if err := d.markFailed(ctx, job.ID, sendErr, retryAt); err != nil {
			return result, err
		}
		if retryAt != nil {
			result.Retried++
			d.logger.Warn("notification delivery failed, will retry",
				"job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "retry_at", retryAt, "error", sendErr.Error())
		} else {
			result.Failed++
			d.logger.Error("notification delivery failed permanently",
				"job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "error", sendErr.Error())
		}
	}
	return result, nil
}

func (d *NotificationDispatcher) deliver(ctx context.Context, job shared.NotificationJob) error {
	if job.Kind != shared.NotificationKindEmail {
		return errs.Wrapf(ErrUnknownNotification, "kind %q", job.Kind)
	}
	var msg shared.EmailMessage
	if err := json.Unmarshal(job.Payload, &msg); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode email payload"), ErrUnknownNotification)
	}
	return d.mailer.Send(ctx, msg)
}

// nextAttempt doubles the delay per attempt; nil means give up.
func (d *NotificationDispatcher) nextAttempt(job shared.NotificationJob, sendErr error) *time.Time {
	if errs.Is(sendErr, ErrUnknownNotification) || job.Attempts >= d.settings.MaxAttempts {
		return nil
	}
	shift := job.Attempts - 1
	if shift < 0 {
		shift = 0
	}
	at := d.clock.Now().Add(BaseRetryDelay << shift)
	return &at
}

func (d *NotificationDispatcher) markSent(ctx context.Context, id uuid.UUID) error {
	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkSent(ctx, id)
	})
}

func (d *NotificationDispatcher) markFailed(ctx context.Context, id uuid.UUID, sendErr error, retryAt *time.Time) error {
	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkFailed(ctx, id, sendErr.Error(), retryAt)
	})
}
