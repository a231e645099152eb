package repository

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CatalogRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCatalogRepository(db db.DBTX, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CatalogRepository) CreateCompany(ctx context.Context, c *catalog.Company) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO companies (id, name, street, house_number, postal_code, city, email, phone)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, companyArgs(c)...)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create company", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateCompany(ctx context.Context, c *catalog.Company) (int64, error) {
	tag, err := r.db.Exec(ctx, `
UPDATE companies
SET name = $2, street = $3, house_number = $4, postal_code = $5, city = $6, email = $7, phone = $8, updated_at = now()
WHERE id = $1`, companyArgs(c)...)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to update company", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CatalogRepository) DeleteCompany(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to delete company", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CatalogRepository) CreateLocation(ctx context.Context, l *catalog.Location) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO locations (id, name, address, category, company_id, access_code)
VALUES ($1, $2, $3, $4, $5, $6)`, locationArgs(l)...)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create location", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateLocation(ctx context.Context, l *catalog.Location) (int64, error) {
	tag, err := r.db.Exec(ctx, `
UPDATE locations
SET name = $2, address = $3, category = $4, company_id = $5, access_code = $6, updated_at = now()
WHERE id = $1`, locationArgs(l)...)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to update location", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CatalogRepository) DeleteLocation(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to delete location", err)
	}
	return tag.RowsAffected(), nil
}

func companyArgs(c *catalog.Company) []any {
	return []any{
		c.ID(),
		c.Name(),
		pgconv.StringPtrToPgtype(c.Street()),
		pgconv.StringPtrToPgtype(c.HouseNumber()),
		pgconv.StringPtrToPgtype(c.PostalCode()),
		pgconv.StringPtrToPgtype(c.City()),
		pgconv.StringPtrToPgtype(c.Email()),
		pgconv.StringPtrToPgtype(c.Phone()),
	}
}

func locationArgs(l *catalog.Location) []any {
	return []any{
		l.ID(),
		l.Name(),
		l.Address(),
		l.Category().String(),
		pgconv.UUIDPtrToPgtype(l.CompanyID()),
		pgconv.StringPtrToPgtype(l.AccessCode()),
	}
}
