//go:build unit

package jobs_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/usecase/jobs"
	"parkspace-booking/internal/usecase/shared"
	jobsmock "parkspace-booking/tests/mock/jobs"
	sharedmock "parkspace-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

type outboxFixture struct {
	uow           *sharedmock.MockUnitOfWork
	invites       *sharedmock.MockInviteRepository
	notifications *sharedmock.MockNotificationRepository
	mailer        *jobsmock.MockMailer
}

func newOutboxFixture(t *testing.T) *outboxFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &outboxFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		invites:       sharedmock.NewMockInviteRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		mailer:        jobsmock.NewMockMailer(ctrl),
	}
	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	tx.EXPECT().Invites().Return(f.invites).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	return f
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func emailJob(t *testing.T, attempts int) shared.NotificationJob {
	t.Helper()
	payload, err := json.Marshal(shared.EmailMessage{
		BookingID: uuid.New(),
		To:        "erika@example.com",
		Subject:   "Buchungsbestätigung",
		Body:      "Hallo",
	})
	require.NoError(t, err)
	return shared.NotificationJob{
		ID:       uuid.New(),
		Kind:     shared.NotificationKindEmail,
		Topic:    shared.TopicBookingConfirmation,
		Payload:  payload,
		Attempts: attempts,
		RunAt:    now,
	}
}

func newDispatcher(f *outboxFixture) *jobs.NotificationDispatcher {
	return jobs.NewNotificationDispatcher(f.uow, f.mailer, jobs.DispatchSettings{MaxAttempts: 3, BatchSize: 10}, clock.NewMockClock(now), discardLogger())
}

func TestNotificationDispatcher_DispatchDue(t *testing.T) {
	ctx := context.Background()

	t.Run("success: sends claimed jobs and marks them sent", func(t *testing.T) {
		f := newOutboxFixture(t)
		job := emailJob(t, 1)
		f.notifications.EXPECT().ClaimDue(gomock.Any(), now, now.Add(jobs.LeaseDuration), 10).Return([]shared.NotificationJob{job}, nil)
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg shared.EmailMessage) error {
				assert.Equal(t, "erika@example.com", msg.To)
				return nil
			})
		f.notifications.EXPECT().MarkSent(gomock.Any(), job.ID).Return(nil)

		res, err := newDispatcher(f).DispatchDue(ctx)

		require.NoError(t, err)
		assert.Equal(t, jobs.DispatchResult{Claimed: 1, Sent: 1}, res)
	})

	t.Run("retry: failed send is requeued with doubled delay", func(t *testing.T) {
		f := newOutboxFixture(t)
		job := emailJob(t, 2)
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{job}, nil)
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("sendgrid: 503"))
		f.notifications.EXPECT().MarkFailed(gomock.Any(), job.ID, "sendgrid: 503", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, retryAt *time.Time) error {
				require.NotNil(t, retryAt)
				assert.Equal(t, now.Add(2*jobs.BaseRetryDelay), *retryAt)
				return nil
			})

		res, err := newDispatcher(f).DispatchDue(ctx)

		require.NoError(t, err)
		assert.Equal(t, jobs.DispatchResult{Claimed: 1, Retried: 1}, res)
	})

	t.Run("failed: last attempt gives up", func(t *testing.T) {
		f := newOutboxFixture(t)
		job := emailJob(t, 3)
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{job}, nil)
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("sendgrid: 503"))
		f.notifications.EXPECT().MarkFailed(gomock.Any(), job.ID, gomock.Any(), (*time.Time)(nil)).Return(nil)

		res, err := newDispatcher(f).DispatchDue(ctx)

		require.NoError(t, err)
		assert.Equal(t, jobs.DispatchResult{Claimed: 1, Failed: 1}, res)
	})

	t.Run("failed: unknown kind is not retried", func(t *testing.T) {
		f := newOutboxFixture(t)
		job := emailJob(t, 1)
		job.Kind = "sms"
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{job}, nil)
		f.notifications.EXPECT().MarkFailed(gomock.Any(), job.ID, gomock.Any(), (*time.Time)(nil)).Return(nil)

		res, err := newDispatcher(f).DispatchDue(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Failed)
	})

	t.Run("error: claim failure is reported", func(t *testing.T) {
		f := newOutboxFixture(t)
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := newDispatcher(f).DispatchDue(ctx)

		assert.ErrorContains(t, err, "failed to claim notification jobs")
	})
}

func TestCleanup_Run(t *testing.T) {
	f := newOutboxFixture(t)
	f.invites.EXPECT().DeleteExpired(gomock.Any(), now).Return(int64(2), nil)
	f.notifications.EXPECT().DeleteFinishedBefore(gomock.Any(), now.Add(-jobs.FinishedJobRetention)).Return(int64(5), nil)

	res, err := jobs.NewCleanup(f.uow, clock.NewMockClock(now), discardLogger()).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, jobs.CleanupResult{ExpiredInvites: 2, FinishedJobs: 5}, res)
}

func TestRunner_RecoversFromPanics(t *testing.T) {
	f := newOutboxFixture(t)
	f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time, time.Time, int) ([]shared.NotificationJob, error) {
			panic("boom")
		})

	runner := jobs.NewRunner(newDispatcher(f), jobs.NewCleanup(f.uow, clock.NewMockClock(now), discardLogger()), discardLogger())

	assert.NotPanics(t, runner.DispatchNotifications)
}
