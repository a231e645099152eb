package repository

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/domain/blackout"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlackoutRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBlackoutRepository(db db.DBTX, logger *slog.Logger) *BlackoutRepository {
	return &BlackoutRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BlackoutRepository) Create(ctx context.Context, b *blackout.Blackout) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO location_blackouts (id, location_id, start_date, end_date, reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID,
		b.LocationID,
		pgconv.DateToPgtype(b.StartDate),
		pgconv.DateToPgtype(b.EndDate),
		pgconv.StringPtrToPgtype(b.Reason),
		b.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create blackout", err)
	}
	return nil
}

func (r *BlackoutRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM location_blackouts WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete blackout", err)
	}
	return tag.RowsAffected(), nil
}
