package queries

import "context"

type DiscountQueries interface {
	ListDiscounts(ctx context.Context) ([]*DiscountView, error)
}

type DiscountReadStore interface {
	ListDiscounts(ctx context.Context) ([]*DiscountView, error)
}

type discountQueriesImpl struct {
	store DiscountReadStore
}

func NewDiscountQueries(store DiscountReadStore) DiscountQueries {
	return &discountQueriesImpl{store: store}
}

func (q *discountQueriesImpl) ListDiscounts(ctx context.Context) ([]*DiscountView, error) {
	return q.store.ListDiscounts(ctx)
}
