package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"
)

type AuditRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewAuditRepository(db db.DBTX, logger *slog.Logger) *AuditRepository {
	return &AuditRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AuditRepository) Append(ctx context.Context, e audit.Event) error {
	metadata := []byte("{}")
	if len(e.Metadata) > 0 {
		var err error
		metadata, err = json.Marshal(e.Metadata)
		if err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode audit metadata", err)
		}
	}

	_, err := r.db.Exec(ctx, `
INSERT INTO audit_log (id, actor, action, entity_type, entity_id, metadata, ip_address, user_agent, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID,
		e.Actor,
		string(e.Action),
		e.EntityType,
		pgconv.UUIDPtrToPgtype(e.EntityID),
		metadata,
		pgconv.StringPtrToPgtype(e.IPAddress),
		pgconv.StringPtrToPgtype(e.UserAgent),
		e.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to append audit event", err)
	}
	return nil
}
