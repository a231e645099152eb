package readstore

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"
	"parkspace-booking/internal/usecase/queries"
	"parkspace-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type DiscountReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewDiscountReadStore(db db.DBTX, logger *slog.Logger) *DiscountReadStore {
	return &DiscountReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *DiscountReadStore) ListDiscounts(ctx context.Context) ([]*queries.DiscountView, error) {
	rows, err := s.db.Query(ctx, `
SELECT d.id, d.code, d.discount_type, d.value, d.valid_from, d.valid_to, d.location_id, l.name,
       d.usage_limit, d.usage_count, d.is_active, d.created_at
FROM discounts d
LEFT JOIN locations l ON l.id = d.location_id
ORDER BY d.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list discounts", err)
	}
	return collect(s.logger, rows, func(row pgx.Row) (*queries.DiscountView, error) {
		var (
			v            queries.DiscountView
			value        pgtype.Numeric
			from, to     pgtype.Date
			locationID   pgtype.UUID
			locationName pgtype.Text
			usageLimit   pgtype.Int4
		)
		if err := row.Scan(&v.ID, &v.Code, &v.Type, &value, &from, &to, &locationID, &locationName,
			&usageLimit, &v.UsageCount, &v.IsActive, &v.CreatedAt); err != nil {
			return nil, err
		}
		d, err := pgconv.DecimalFromNumeric(value)
		if err != nil {
			return nil, err
		}
		v.Value = d
		v.ValidFrom = dateStringPtr(from)
		v.ValidTo = dateStringPtr(to)
		v.LocationID = pgconv.UUIDPtrFromPgtype(locationID)
		v.LocationName = pgconv.StringPtrFromPgtype(locationName)
		v.UsageLimit = intPtr(usageLimit)
		return &v, nil
	}, "failed to scan discount")
}

// FindByCode expects an already normalized (upper case) code.
func (s *DiscountReadStore) FindByCode(ctx context.Context, code string) (*shared.DiscountSnapshot, error) {
	var (
		snap       shared.DiscountSnapshot
		kind       string
		value      pgtype.Numeric
		from, to   pgtype.Date
		locationID pgtype.UUID
		usageLimit pgtype.Int4
	)
	err := s.db.QueryRow(ctx, `
SELECT id, code, discount_type, value, valid_from, valid_to, location_id, usage_limit, usage_count, is_active, created_at
FROM discounts WHERE code = $1`, code).Scan(
		&snap.ID, &snap.Code, &kind, &value, &from, &to, &locationID, &usageLimit, &snap.UsageCount, &snap.IsActive, &snap.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOr(s.logger, err, "discount not found", "failed to get discount")
	}
	d, err := pgconv.DecimalFromNumeric(value)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "invalid discount value", err)
	}
	snap.Type = billing.DiscountType(kind)
	snap.Value = d
	snap.ValidFrom = pgconv.DatePtrFromPgtype(from)
	snap.ValidTo = pgconv.DatePtrFromPgtype(to)
	snap.LocationID = pgconv.UUIDPtrFromPgtype(locationID)
	snap.UsageLimit = intPtr(usageLimit)
	return &snap, nil
}

func intPtr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}
