package queries

import "context"

type TemplateQueries interface {
	ListTemplates(ctx context.Context) ([]*TemplateView, error)
}

type TemplateReadStore interface {
	ListTemplates(ctx context.Context) ([]*TemplateView, error)
}

type templateQueriesImpl struct {
	store TemplateReadStore
}

func NewTemplateQueries(store TemplateReadStore) TemplateQueries {
	return &templateQueriesImpl{store: store}
}

func (q *templateQueriesImpl) ListTemplates(ctx context.Context) ([]*TemplateView, error) {
	return q.store.ListTemplates(ctx)
}
