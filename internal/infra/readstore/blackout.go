package readstore

import (
	"context"
	"log/slog"
	"time"

	"parkspace-booking/internal/domain/blackout"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"
	"parkspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Ranges overlap inclusively: a blackout ending on the start day still conflicts.
const overlapWhere = `location_id = $1 AND start_date <= $3 AND end_date >= $2`

type BlackoutReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBlackoutReadStore(db db.DBTX, logger *slog.Logger) *BlackoutReadStore {
	return &BlackoutReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *BlackoutReadStore) ListBlackouts(ctx context.Context, locationID *uuid.UUID) ([]*queries.BlackoutView, error) {
	rows, err := s.db.Query(ctx, `
SELECT b.id, b.location_id, l.name, b.start_date, b.end_date, b.reason, b.created_at
FROM location_blackouts b
JOIN locations l ON l.id = b.location_id
WHERE ($1::uuid IS NULL OR b.location_id = $1)
ORDER BY b.start_date, b.id`, pgconv.UUIDPtrToPgtype(locationID))
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list blackouts", err)
	}
	return collect(s.logger, rows, scanBlackoutView, "failed to scan blackout")
}

func (s *BlackoutReadStore) ListOverlapping(ctx context.Context, locationID uuid.UUID, from, to time.Time) ([]*queries.BlackoutView, error) {
	rows, err := s.db.Query(ctx, `
SELECT b.id, b.location_id, l.name, b.start_date, b.end_date, b.reason, b.created_at
FROM location_blackouts b
JOIN locations l ON l.id = b.location_id
WHERE b.`+overlapWhere+`
ORDER BY b.start_date, b.id`,
		locationID, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list overlapping blackouts", err)
	}
	return collect(s.logger, rows, scanBlackoutView, "failed to scan blackout")
}

// Overlapping returns the blackouts of locationID intersecting [start, end].
func (s *BlackoutReadStore) Overlapping(ctx context.Context, locationID uuid.UUID, start, end time.Time) ([]blackout.Blackout, error) {
	rows, err := s.db.Query(ctx, `
SELECT id, location_id, start_date, end_date, reason, created_at
FROM location_blackouts
WHERE `+overlapWhere+`
ORDER BY start_date, id`,
		locationID, pgconv.DateToPgtype(start), pgconv.DateToPgtype(end),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load blackouts", err)
	}
	return collect(s.logger, rows, func(row pgx.Row) (blackout.Blackout, error) {
		var (
			b          blackout.Blackout
			start, end pgtype.Date
			reason     pgtype.Text
		)
		if err := row.Scan(&b.ID, &b.LocationID, &start, &end, &reason, &b.CreatedAt); err != nil {
			return b, err
		}
		b.StartDate = pgconv.DateFromPgtype(start)
		b.EndDate = pgconv.DateFromPgtype(end)
		b.Reason = pgconv.StringPtrFromPgtype(reason)
		return b, nil
	}, "failed to scan blackout")
}

func scanBlackoutView(row pgx.Row) (*queries.BlackoutView, error) {
	var (
		v          queries.BlackoutView
		start, end pgtype.Date
		reason     pgtype.Text
	)
	if err := row.Scan(&v.ID, &v.LocationID, &v.LocationName, &start, &end, &reason, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.StartDate = dateString(start)
	v.EndDate = dateString(end)
	v.Reason = pgconv.StringPtrFromPgtype(reason)
	return &v, nil
}
