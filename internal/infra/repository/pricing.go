package repository

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const basePriceKey = "base_price"

type PricingRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPricingRepository(db db.DBTX, logger *slog.Logger) *PricingRepository {
	return &PricingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PricingRepository) CreateRule(ctx context.Context, rule *pricing.Rule) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO pricing_rules (id, location_id, vehicle_type_id, category, base_price, valid_from, valid_to, priority, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, converter.RuleInsertArgs(rule)...)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create pricing rule", err)
	}
	return nil
}

func (r *PricingRepository) DeleteRule(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM pricing_rules WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete pricing rule", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PricingRepository) CreateOverride(ctx context.Context, o *pricing.Override) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO pricing_overrides (id, location_id, vehicle_type_id, category, override_price, valid_from, valid_to, reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, converter.OverrideInsertArgs(o)...)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create pricing override", err)
	}
	return nil
}

func (r *PricingRepository) DeleteOverride(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM pricing_overrides WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete pricing override", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PricingRepository) SetBasePrice(ctx context.Context, value decimal.Decimal) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, basePriceKey, value.String())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to set base price", err)
	}
	return nil
}
