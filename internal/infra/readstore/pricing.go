package readstore

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"
	"parkspace-booking/internal/usecase/queries"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const basePriceKey = "base_price"

type PricingReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPricingReadStore(db db.DBTX, logger *slog.Logger) *PricingReadStore {
	return &PricingReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *PricingReadStore) ListRules(ctx context.Context, locationID *uuid.UUID) ([]*queries.PricingRuleView, error) {
	rows, err := s.db.Query(ctx, `
SELECT r.id, r.location_id, l.name, r.vehicle_type_id, vt.label, r.category, r.base_price,
       r.valid_from, r.valid_to, r.priority, r.created_at
FROM pricing_rules r
JOIN locations l ON l.id = r.location_id
JOIN vehicle_types vt ON vt.id = r.vehicle_type_id
WHERE ($1::uuid IS NULL OR r.location_id = $1)
ORDER BY l.name, vt.max_length, r.category, r.priority DESC, r.created_at DESC`,
		pgconv.UUIDPtrToPgtype(locationID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list pricing rules", err)
	}
	return collect(s.logger, rows, func(row pgx.Row) (*queries.PricingRuleView, error) {
		var (
			v        queries.PricingRuleView
			price    pgtype.Numeric
			from, to pgtype.Date
		)
		if err := row.Scan(&v.ID, &v.LocationID, &v.LocationName, &v.VehicleTypeID, &v.VehicleLabel, &v.Category,
			&price, &from, &to, &v.Priority, &v.CreatedAt); err != nil {
			return nil, err
		}
		p, err := pgconv.DecimalFromNumeric(price)
		if err != nil {
			return nil, err
		}
		v.BasePrice = p
		v.ValidFrom = dateStringPtr(from)
		v.ValidTo = dateStringPtr(to)
		return &v, nil
	}, "failed to scan pricing rule")
}

func (s *PricingReadStore) ListOverrides(ctx context.Context, locationID *uuid.UUID) ([]*queries.PricingOverrideView, error) {
	rows, err := s.db.Query(ctx, `
SELECT o.id, o.location_id, l.name, o.vehicle_type_id, vt.label, o.category, o.override_price,
       o.valid_from, o.valid_to, o.reason, o.created_at
FROM pricing_overrides o
JOIN locations l ON l.id = o.location_id
JOIN vehicle_types vt ON vt.id = o.vehicle_type_id
WHERE ($1::uuid IS NULL OR o.location_id = $1)
ORDER BY o.valid_from DESC, o.created_at DESC`,
		pgconv.UUIDPtrToPgtype(locationID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list pricing overrides", err)
	}
	return collect(s.logger, rows, func(row pgx.Row) (*queries.PricingOverrideView, error) {
		var (
			v        queries.PricingOverrideView
			price    pgtype.Numeric
			from, to pgtype.Date
			reason   pgtype.Text
		)
		if err := row.Scan(&v.ID, &v.LocationID, &v.LocationName, &v.VehicleTypeID, &v.VehicleLabel, &v.Category,
			&price, &from, &to, &reason, &v.CreatedAt); err != nil {
			return nil, err
		}
		p, err := pgconv.DecimalFromNumeric(price)
		if err != nil {
			return nil, err
		}
		v.Price = p
		v.ValidFrom = dateString(from)
		v.ValidTo = dateString(to)
		v.Reason = pgconv.StringPtrFromPgtype(reason)
		return &v, nil
	}, "failed to scan pricing override")
}

// PriceCandidates loads every rule and override of target plus its legacy price.
// Window filtering is left to the resolver.
func (s *PricingReadStore) PriceCandidates(ctx context.Context, target pricing.Target) (*shared.PriceCandidates, error) {
	args := []any{target.LocationID, target.VehicleTypeID, string(target.Category)}

	ruleRows, err := s.db.Query(ctx, `
SELECT id, base_price, valid_from, valid_to, priority, created_at
FROM pricing_rules
WHERE location_id = $1 AND vehicle_type_id = $2 AND category = $3`, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load pricing rules", err)
	}
	rules, err := collect(s.logger, ruleRows, func(row pgx.Row) (pricing.Rule, error) {
		var (
			r        = pricing.Rule{Target: target}
			price    pgtype.Numeric
			from, to pgtype.Date
		)
		if err := row.Scan(&r.ID, &price, &from, &to, &r.Priority, &r.CreatedAt); err != nil {
			return r, err
		}
		p, err := pgconv.DecimalFromNumeric(price)
		if err != nil {
			return r, err
		}
		r.BasePrice = p
		r.Window = pricing.ValidityWindow{From: pgconv.DatePtrFromPgtype(from), To: pgconv.DatePtrFromPgtype(to)}
		return r, nil
	}, "failed to scan pricing rule")
	if err != nil {
		return nil, err
	}

	overrideRows, err := s.db.Query(ctx, `
SELECT id, override_price, valid_from, valid_to, reason, created_at
FROM pricing_overrides
WHERE location_id = $1 AND vehicle_type_id = $2 AND category = $3`, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load pricing overrides", err)
	}
	overrides, err := collect(s.logger, overrideRows, func(row pgx.Row) (pricing.Override, error) {
		var (
			o        = pricing.Override{Target: target}
			price    pgtype.Numeric
			from, to pgtype.Date
			reason   pgtype.Text
		)
		if err := row.Scan(&o.ID, &price, &from, &to, &reason, &o.CreatedAt); err != nil {
			return o, err
		}
		p, err := pgconv.DecimalFromNumeric(price)
		if err != nil {
			return o, err
		}
		o.Price = p
		o.Window = pricing.ValidityWindow{From: pgconv.DatePtrFromPgtype(from), To: pgconv.DatePtrFromPgtype(to)}
		o.Reason = pgconv.StringPtrFromPgtype(reason)
		return o, nil
	}, "failed to scan pricing override")
	if err != nil {
		return nil, err
	}

	legacy, err := s.legacyPrice(ctx, args)
	if err != nil {
		return nil, err
	}

	return &shared.PriceCandidates{
		Rules:     rules,
		Overrides: overrides,
		Legacy:    legacy,
	}, nil
}

func (s *PricingReadStore) legacyPrice(ctx context.Context, args []any) (*decimal.Decimal, error) {
	var price pgtype.Numeric
	err := s.db.QueryRow(ctx, `
SELECT price_per_month FROM legacy_prices
WHERE location_id = $1 AND vehicle_type_id = $2 AND category = $3`, args...).Scan(&price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load legacy price", err)
	}
	p, err := pgconv.DecimalPtrFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "invalid legacy price", err)
	}
	return p, nil
}

func (s *PricingReadStore) BasePrice(ctx context.Context) (*decimal.Decimal, error) {
	var raw string
	err := s.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, basePriceKey).Scan(&raw)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read base price", err)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "stored base price is not a number", err)
	}
	return &value, nil
}

