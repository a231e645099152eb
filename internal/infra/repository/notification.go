package repository

import (
	"context"
	"log/slog"
	"time"

	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	jobStatusQueued = "queued"
	jobStatusSent   = "sent"
	jobStatusFailed = "failed"
)

type NotificationRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewNotificationRepository(db db.DBTX, logger *slog.Logger) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`,
		kind, topic, payload, pgtype.Timestamptz{Time: runAt, Valid: true}, jobStatusQueued)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.db.Query(ctx, `
UPDATE notification_jobs
SET attempts = attempts + 1, run_at = $2, updated_at = now()
WHERE id IN (
    SELECT id FROM notification_jobs
    WHERE status = $4 AND run_at <= $1
    ORDER BY run_at, id
    LIMIT $3
    FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, topic, payload, attempts, run_at`, now, leaseUntil, limit, jobStatusQueued)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []shared.NotificationJob
	for rows.Next() {
		var job shared.NotificationJob
		var attempts int32
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &attempts, &job.RunAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan notification job", err)
		}
		job.Attempts = int(attempts)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
UPDATE notification_jobs SET status = $2, last_error = NULL, updated_at = now() WHERE id = $1`, id, jobStatusSent)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt *time.Time) error {
	status := jobStatusFailed
	runAt := pgtype.Timestamptz{}
	if retryAt != nil {
		status = jobStatusQueued
		runAt = pgtype.Timestamptz{Time: *retryAt, Valid: true}
	}
	_, err := r.db.Exec(ctx, `
UPDATE notification_jobs
SET status = $2, last_error = $3, run_at = COALESCE($4, run_at), updated_at = now()
WHERE id = $1`, id, status, pgconv.StringPtrToPgtype(&lastError), runAt)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to mark notification job failed", err)
	}
	return nil
}

func (r *NotificationRepository) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
DELETE FROM notification_jobs WHERE status IN ($2, $3) AND updated_at < $1`, cutoff, jobStatusSent, jobStatusFailed)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete finished notification jobs", err)
	}
	return tag.RowsAffected(), nil
}
