package repository

import (
	"context"
	"log/slog"
	"time"

	"parkspace-booking/internal/domain/invite"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InviteRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewInviteRepository(db db.DBTX, logger *slog.Logger) *InviteRepository {
	return &InviteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *InviteRepository) Create(ctx context.Context, t *invite.Token) error {
	var category *string
	if t.Category != nil {
		c := t.Category.String()
		category = &c
	}
	_, err := r.db.Exec(ctx, `
INSERT INTO invite_tokens (token, location_id, vehicle_type_id, category, prefill_email, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.Token,
		pgconv.UUIDPtrToPgtype(t.LocationID),
		pgconv.UUIDPtrToPgtype(t.VehicleTypeID),
		pgconv.StringPtrToPgtype(category),
		pgconv.StringPtrToPgtype(t.PrefillEmail),
		t.ExpiresAt,
		t.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create invite token", err)
	}
	return nil
}

func (r *InviteRepository) Consume(ctx context.Context, token string, bookingID uuid.UUID, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
UPDATE invite_tokens
SET used_at = $3, booking_id = $2
WHERE token = $1 AND used_at IS NULL AND expires_at > $3`, token, bookingID, now)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to consume invite token", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteExpired removes unused tokens that expired before cutoff; used tokens
// stay as the booking's provenance.
func (r *InviteRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM invite_tokens WHERE used_at IS NULL AND expires_at < $1`, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete expired invite tokens", err)
	}
	return tag.RowsAffected(), nil
}
