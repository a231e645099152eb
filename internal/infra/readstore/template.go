package readstore

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/domain/contract"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"
	"parkspace-booking/internal/usecase/queries"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const templateColumns = `id, name, scope_type, scope_id, body_md, version, is_active, created_at`

type TemplateReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewTemplateReadStore(db db.DBTX, logger *slog.Logger) *TemplateReadStore {
	return &TemplateReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *TemplateReadStore) ListTemplates(ctx context.Context) ([]*queries.TemplateView, error) {
	rows, err := s.db.Query(ctx, `SELECT `+templateColumns+` FROM contract_templates ORDER BY name, version DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list templates", err)
	}
	return collect(s.logger, rows, func(row pgx.Row) (*queries.TemplateView, error) {
		snap, err := scanTemplate(row)
		if err != nil {
			return nil, err
		}
		return &queries.TemplateView{
			ID:        snap.ID,
			Name:      snap.Name,
			ScopeType: string(snap.ScopeType),
			ScopeID:   snap.ScopeID,
			Body:      snap.Body,
			Version:   snap.Version,
			IsActive:  snap.IsActive,
			CreatedAt: snap.CreatedAt,
		}, nil
	}, "failed to scan template")
}

// ActiveTemplates returns the active templates that could apply to a location:
// its own, its company's and the global one. Scope precedence is decided by the caller.
func (s *TemplateReadStore) ActiveTemplates(ctx context.Context, locationID uuid.UUID, companyID *uuid.UUID) ([]shared.TemplateSnapshot, error) {
	rows, err := s.db.Query(ctx, `
SELECT `+templateColumns+`
FROM contract_templates
WHERE is_active
  AND (scope_type = 'global'
       OR (scope_type = 'location' AND scope_id = $1)
       OR (scope_type = 'company' AND scope_id = $2))
ORDER BY version DESC`, locationID, pgconv.UUIDPtrToPgtype(companyID))
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load active templates", err)
	}
	return collect(s.logger, rows, scanTemplate, "failed to scan template")
}

func (s *TemplateReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.TemplateSnapshot, error) {
	snap, err := scanTemplate(s.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM contract_templates WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(s.logger, err, "template not found", "failed to get template")
	}
	return &snap, nil
}

func scanTemplate(row pgx.Row) (shared.TemplateSnapshot, error) {
	var (
		snap      shared.TemplateSnapshot
		scopeType string
		scopeID   pgtype.UUID
	)
	if err := row.Scan(&snap.ID, &snap.Name, &scopeType, &scopeID, &snap.Body, &snap.Version, &snap.IsActive, &snap.CreatedAt); err != nil {
		return snap, err
	}
	snap.ScopeType = contract.ScopeType(scopeType)
	snap.ScopeID = pgconv.UUIDPtrFromPgtype(scopeID)
	return snap, nil
}
