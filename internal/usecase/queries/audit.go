package queries

import "context"

type AuditQueries interface {
	ListEvents(ctx context.Context, page Page) (*AuditPage, error)
}

type AuditReadStore interface {
	// ListEvents is ordered newest first.
	ListEvents(ctx context.Context, limit, offset int) ([]*AuditEventView, error)
	CountEvents(ctx context.Context) (int64, error)
}

type auditQueriesImpl struct {
	store AuditReadStore
}

func NewAuditQueries(store AuditReadStore) AuditQueries {
	return &auditQueriesImpl{store: store}
}

func (q *auditQueriesImpl) ListEvents(ctx context.Context, page Page) (*AuditPage, error) {
	items, err := q.store.ListEvents(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := q.store.CountEvents(ctx)
	if err != nil {
		return nil, err
	}
	return &AuditPage{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}
