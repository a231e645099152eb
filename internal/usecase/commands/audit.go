package commands

import (
	"context"
	"time"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// recordAdminEvent appends the audit entry every state-changing admin operation writes.
func recordAdminEvent(
	ctx context.Context,
	tx shared.Tx,
	action audit.Action,
	entityType string,
	entityID *uuid.UUID,
	metadata map[string]any,
	origin audit.Origin,
	now time.Time,
) error {
	return tx.Audit().Append(ctx, audit.NewEvent(audit.ActorAdmin, action, entityType, entityID, metadata, origin, now))
}
