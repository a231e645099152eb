package commands

import (
	"context"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/pkg/patch"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CompanyInput struct {
	Name        string
	Street      *string
	HouseNumber *string
	PostalCode  *string
	City        *string
	Email       *string
	Phone       *string
}

// CompanyUpdate leaves nil fields unchanged; an empty string clears an optional field.
type CompanyUpdate struct {
	Name        *string
	Street      *string
	HouseNumber *string
	PostalCode  *string
	City        *string
	Email       *string
	Phone       *string
}

type LocationInput struct {
	Name       string
	Address    string
	Category   catalog.Category
	CompanyID  *uuid.UUID
	AccessCode *string
}

// LocationUpdate leaves nil fields unchanged; uuid.Nil detaches the company.
type LocationUpdate struct {
	Name       *string
	Address    *string
	Category   *catalog.Category
	CompanyID  *uuid.UUID
	AccessCode *string
}

type CatalogCommands interface {
	CreateCompany(ctx context.Context, in CompanyInput, origin audit.Origin) (uuid.UUID, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, in CompanyUpdate, origin audit.Origin) error
	DeleteCompany(ctx context.Context, id uuid.UUID, force bool, origin audit.Origin) error
	CreateLocation(ctx context.Context, in LocationInput, origin audit.Origin) (uuid.UUID, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, in LocationUpdate, origin audit.Origin) error
	DeleteLocation(ctx context.Context, id uuid.UUID, force bool, origin audit.Origin) error
}

type catalogUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogUseCase(uow shared.UnitOfWork, clock clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{
		uow:   uow,
		clock: clock,
	}
}

func (uc *catalogUseCaseImpl) CreateCompany(ctx context.Context, in CompanyInput, origin audit.Origin) (uuid.UUID, error) {
	company, err := catalog.NewCompany(uuid.Nil, catalog.CompanyParams(in))
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Catalog().CreateCompany(ctx, company); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return catalog.ErrDuplicateCompany
			}
			return err
		}
		id := company.ID()
		return recordAdminEvent(ctx, tx, audit.ActionCompanyCreated, audit.EntityCompany, &id,
			map[string]any{"name": company.Name()}, origin, uc.clock.Now())
	})
	if err != nil {
		return uuid.Nil, err
	}
	return company.ID(), nil
}

func (uc *catalogUseCaseImpl) UpdateCompany(ctx context.Context, id uuid.UUID, in CompanyUpdate, origin audit.Origin) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().CompanyByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return catalog.ErrCompanyNotFound
			}
			return err
		}

		company, err := catalog.NewCompany(id, catalog.CompanyParams{
			Name:        patch.Coalesce(in.Name, current.Name),
			Street:      patch.CoalescePtr(in.Street, current.Street),
			HouseNumber: patch.CoalescePtr(in.HouseNumber, current.HouseNumber),
			PostalCode:  patch.CoalescePtr(in.PostalCode, current.PostalCode),
			City:        patch.CoalescePtr(in.City, current.City),
			Email:       patch.CoalescePtr(in.Email, current.Email),
			Phone:       patch.CoalescePtr(in.Phone, current.Phone),
		})
		if err != nil {
			return err
		}

		affected, err := tx.Catalog().UpdateCompany(ctx, company)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return catalog.ErrDuplicateCompany
			}
			return err
		}
		if affected == 0 {
			return catalog.ErrCompanyNotFound
		}
		return recordAdminEvent(ctx, tx, audit.ActionCompanyUpdated, audit.EntityCompany, &id,
			map[string]any{"name": company.Name()}, origin, uc.clock.Now())
	})
}

func (uc *catalogUseCaseImpl) DeleteCompany(ctx context.Context, id uuid.UUID, force bool, origin audit.Origin) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().CompanyByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return catalog.ErrCompanyNotFound
			}
			return err
		}

		locations, err := tx.Reads().CountLocationsByCompany(ctx, id)
		if err != nil {
			return err
		}
		if locations > 0 && !force {
			return catalog.ErrCompanyHasLocations
		}

		affected, err := tx.Catalog().DeleteCompany(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return catalog.ErrCompanyNotFound
		}
		return recordAdminEvent(ctx, tx, audit.ActionCompanyDeleted, audit.EntityCompany, &id, map[string]any{
			"name":              current.Name,
			"force":             force,
			"deleted_locations": locations,
		}, origin, uc.clock.Now())
	})
}

func (uc *catalogUseCaseImpl) CreateLocation(ctx context.Context, in LocationInput, origin audit.Origin) (uuid.UUID, error) {
	location, err := catalog.NewLocation(uuid.Nil, in.Name, in.Address, in.Category, in.CompanyID, in.AccessCode)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureCompany(ctx, tx, in.CompanyID); err != nil {
			return err
		}
		if err := tx.Catalog().CreateLocation(ctx, location); err != nil {
			return err
		}
		id := location.ID()
		return recordAdminEvent(ctx, tx, audit.ActionLocationCreated, audit.EntityLocation, &id,
			map[string]any{"name": location.Name(), "category": location.Category().String()}, origin, uc.clock.Now())
	})
	if err != nil {
		return uuid.Nil, err
	}
	return location.ID(), nil
}

func (uc *catalogUseCaseImpl) UpdateLocation(ctx context.Context, id uuid.UUID, in LocationUpdate, origin audit.Origin) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().LocationByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return catalog.ErrLocationNotFound
			}
			return err
		}

		var currentCompany *uuid.UUID
		if current.Company != nil {
			cid := current.Company.ID
			currentCompany = &cid
		}
		companyID := patch.CoalescePtr(in.CompanyID, currentCompany)

		location, err := catalog.NewLocation(
			id,
			patch.Coalesce(in.Name, current.Name),
			patch.Coalesce(in.Address, current.Address),
			patch.Coalesce(in.Category, current.Category),
			companyID,
			patch.CoalescePtr(in.AccessCode, current.AccessCode),
		)
		if err != nil {
			return err
		}
		if err := ensureCompany(ctx, tx, companyID); err != nil {
			return err
		}

		affected, err := tx.Catalog().UpdateLocation(ctx, location)
		if err != nil {
			return err
		}
		if affected == 0 {
			return catalog.ErrLocationNotFound
		}
		return recordAdminEvent(ctx, tx, audit.ActionLocationUpdated, audit.EntityLocation, &id,
			map[string]any{"name": location.Name()}, origin, uc.clock.Now())
	})
}

func (uc *catalogUseCaseImpl) DeleteLocation(ctx context.Context, id uuid.UUID, force bool, origin audit.Origin) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().LocationByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return catalog.ErrLocationNotFound
			}
			return err
		}

		bookings, err := tx.Reads().CountBookingsByLocation(ctx, id)
		if err != nil {
			return err
		}
		if bookings > 0 && !force {
			return catalog.ErrLocationHasBookings
		}

		affected, err := tx.Catalog().DeleteLocation(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return catalog.ErrLocationNotFound
		}
		return recordAdminEvent(ctx, tx, audit.ActionLocationDeleted, audit.EntityLocation, &id, map[string]any{
			"name":             current.Name,
			"force":            force,
			"deleted_bookings": bookings,
		}, origin, uc.clock.Now())
	})
}

func ensureCompany(ctx context.Context, tx shared.Tx, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := tx.Reads().CompanyByID(ctx, *id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return catalog.ErrCompanyNotFound
		}
		return err
	}
	return nil
}
