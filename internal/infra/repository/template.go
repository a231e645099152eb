package repository

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/domain/contract"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TemplateRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewTemplateRepository(db db.DBTX, logger *slog.Logger) *TemplateRepository {
	return &TemplateRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TemplateRepository) Create(ctx context.Context, t *contract.Template) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO contract_templates (id, name, scope_type, scope_id, body_md, version, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID(),
		t.Name(),
		string(t.ScopeType()),
		pgconv.UUIDPtrToPgtype(t.ScopeID()),
		t.Body(),
		t.Version(),
		t.IsActive(),
		t.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create contract template", err)
	}
	return nil
}

// MaxVersion takes a transaction-scoped advisory lock on the name so concurrent
// creates of the same template serialize on the version number.
func (r *TemplateRepository) MaxVersion(ctx context.Context, name string) (int, error) {
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, name); err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to lock template name", err)
	}
	var version int32
	err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) FROM contract_templates WHERE name = $1`, name).Scan(&version)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read template version", err)
	}
	return int(version), nil
}

func (r *TemplateRepository) Activate(ctx context.Context, id uuid.UUID, scopeType contract.ScopeType, scopeID *uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
UPDATE contract_templates
SET is_active = FALSE
WHERE is_active AND id <> $1 AND scope_type = $2 AND scope_id IS NOT DISTINCT FROM $3`,
		id, string(scopeType), pgconv.UUIDPtrToPgtype(scopeID))
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to deactivate sibling templates", err)
	}

	tag, err := r.db.Exec(ctx, `UPDATE contract_templates SET is_active = TRUE WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to activate template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "contract template not found", nil)
	}
	return nil
}
