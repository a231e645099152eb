package queries

import (
	"context"
	"time"

	"parkspace-booking/internal/domain/blackout"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/infra"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// Availability reports the blackouts overlapping [from, to] without their reasons.
	Availability(ctx context.Context, locationID uuid.UUID, from, to time.Time) (*AvailabilityView, error)
	ListBlackouts(ctx context.Context, locationID *uuid.UUID) ([]*BlackoutView, error)
}

type BlackoutReadStore interface {
	ListBlackouts(ctx context.Context, locationID *uuid.UUID) ([]*BlackoutView, error)
	ListOverlapping(ctx context.Context, locationID uuid.UUID, from, to time.Time) ([]*BlackoutView, error)
}

type availabilityQueriesImpl struct {
	store   BlackoutReadStore
	catalog CatalogReadStore
}

func NewAvailabilityQueries(store BlackoutReadStore, catalogStore CatalogReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:   store,
		catalog: catalogStore,
	}
}

func (q *availabilityQueriesImpl) Availability(ctx context.Context, locationID uuid.UUID, from, to time.Time) (*AvailabilityView, error) {
	if err := blackout.ValidateRange(from, to); err != nil {
		return nil, err
	}
	if _, err := q.catalog.FindLocationByID(ctx, locationID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrLocationNotFound
		}
		return nil, err
	}

	rows, err := q.store.ListOverlapping(ctx, locationID, from, to)
	if err != nil {
		return nil, err
	}

	ranges := make([]BlockedRange, 0, len(rows))
	for _, b := range rows {
		ranges = append(ranges, BlockedRange{StartDate: b.StartDate, EndDate: b.EndDate})
	}
	return &AvailabilityView{
		Available: len(ranges) == 0,
		Blackouts: ranges,
	}, nil
}

func (q *availabilityQueriesImpl) ListBlackouts(ctx context.Context, locationID *uuid.UUID) ([]*BlackoutView, error) {
	return q.store.ListBlackouts(ctx, locationID)
}
