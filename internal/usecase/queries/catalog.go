package queries

import (
	"context"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/infra"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ListLocations(ctx context.Context) ([]*LocationView, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*LocationView, error)
	ListCompanies(ctx context.Context) ([]*CompanyView, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*CompanyView, error)
	ListVehicleTypes(ctx context.Context) ([]*VehicleTypeView, error)
}

type CatalogReadStore interface {
	ListLocations(ctx context.Context) ([]*LocationView, error)
	FindLocationByID(ctx context.Context, id uuid.UUID) (*LocationView, error)
	ListCompanies(ctx context.Context) ([]*CompanyView, error)
	FindCompanyByID(ctx context.Context, id uuid.UUID) (*CompanyView, error)
	// ListVehicleTypes is ordered by max length ascending.
	ListVehicleTypes(ctx context.Context) ([]*VehicleTypeView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListLocations(ctx context.Context) ([]*LocationView, error) {
	return q.store.ListLocations(ctx)
}

func (q *catalogQueriesImpl) GetLocation(ctx context.Context, id uuid.UUID) (*LocationView, error) {
	loc, err := q.store.FindLocationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrLocationNotFound
		}
		return nil, err
	}
	return loc, nil
}

func (q *catalogQueriesImpl) ListCompanies(ctx context.Context) ([]*CompanyView, error) {
	return q.store.ListCompanies(ctx)
}

func (q *catalogQueriesImpl) GetCompany(ctx context.Context, id uuid.UUID) (*CompanyView, error) {
	company, err := q.store.FindCompanyByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func (q *catalogQueriesImpl) ListVehicleTypes(ctx context.Context) ([]*VehicleTypeView, error) {
	return q.store.ListVehicleTypes(ctx)
}
