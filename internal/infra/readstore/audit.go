package readstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"
	"parkspace-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type AuditReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewAuditReadStore(db db.DBTX, logger *slog.Logger) *AuditReadStore {
	return &AuditReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *AuditReadStore) ListEvents(ctx context.Context, limit, offset int) ([]*queries.AuditEventView, error) {
	rows, err := s.db.Query(ctx, `
SELECT id, actor, action, entity_type, entity_id, metadata, ip_address, user_agent, created_at
FROM audit_log
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list audit events", err)
	}
	return collect(s.logger, rows, func(row pgx.Row) (*queries.AuditEventView, error) {
		var (
			v         queries.AuditEventView
			entityID  pgtype.UUID
			metadata  []byte
			ip, agent pgtype.Text
		)
		if err := row.Scan(&v.ID, &v.Actor, &v.Action, &v.EntityType, &entityID, &metadata, &ip, &agent, &v.CreatedAt); err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &v.Metadata); err != nil {
				return nil, err
			}
		}
		v.EntityID = pgconv.UUIDPtrFromPgtype(entityID)
		v.IPAddress = pgconv.StringPtrFromPgtype(ip)
		v.UserAgent = pgconv.StringPtrFromPgtype(agent)
		return &v, nil
	}, "failed to scan audit event")
}

func (s *AuditReadStore) CountEvents(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to count audit events", err)
	}
	return n, nil
}
