package repository

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DiscountRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewDiscountRepository(db db.DBTX, logger *slog.Logger) *DiscountRepository {
	return &DiscountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *DiscountRepository) Create(ctx context.Context, d *billing.Discount) error {
	var usageLimit *int32
	if l := d.UsageLimit(); l != nil {
		v := int32(*l) // #nosec G115 -- validated positive and bounded by the request schema
		usageLimit = &v
	}
	_, err := r.db.Exec(ctx, `
INSERT INTO discounts (id, code, discount_type, value, valid_from, valid_to, location_id, usage_limit, usage_count, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, TRUE, $9)`,
		d.ID(),
		d.Code(),
		string(d.Type()),
		pgconv.DecimalToNumeric(d.Value()),
		pgconv.DatePtrToPgtype(d.Window().From),
		pgconv.DatePtrToPgtype(d.Window().To),
		pgconv.UUIDPtrToPgtype(d.LocationID()),
		pgconv.Int32PtrToPgtype(usageLimit),
		d.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create discount", err)
	}
	return nil
}

// IncrementUsage returns 0 rows when the limit is already reached or the
// discount was deactivated concurrently.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `
UPDATE discounts
SET usage_count = usage_count + 1
WHERE id = $1 AND is_active AND (usage_limit IS NULL OR usage_count < usage_limit)`, id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to increment discount usage", err)
	}
	return tag.RowsAffected(), nil
}

func (r *DiscountRepository) Toggle(ctx context.Context, id uuid.UUID) (bool, error) {
	var active bool
	err := r.db.QueryRow(ctx, `UPDATE discounts SET is_active = NOT is_active WHERE id = $1 RETURNING is_active`, id).Scan(&active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, infra.WrapRepoErr(r.logger, infra.KindNotFound, "discount not found", err)
		}
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to toggle discount", err)
	}
	return active, nil
}

func (r *DiscountRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to delete discount", err)
	}
	return tag.RowsAffected(), nil
}
