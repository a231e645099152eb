package readstore

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"
	"parkspace-booking/internal/usecase/queries"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const locationViewSQL = `
SELECT l.id, l.name, l.address, l.category, l.company_id, c.name, l.access_code, l.created_at, l.updated_at
FROM locations l
LEFT JOIN companies c ON c.id = l.company_id`

const companyViewSQL = `
SELECT c.id, c.name, c.street, c.house_number, c.postal_code, c.city, c.email, c.phone,
       (SELECT COUNT(*) FROM locations l WHERE l.company_id = c.id), c.created_at, c.updated_at
FROM companies c`

type CatalogReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCatalogReadStore(db db.DBTX, logger *slog.Logger) *CatalogReadStore {
	return &CatalogReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *CatalogReadStore) ListLocations(ctx context.Context) ([]*queries.LocationView, error) {
	rows, err := s.db.Query(ctx, locationViewSQL+` ORDER BY l.name, l.id`)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list locations", err)
	}
	return collect(s.logger, rows, scanLocationView, "failed to scan location")
}

func (s *CatalogReadStore) FindLocationByID(ctx context.Context, id uuid.UUID) (*queries.LocationView, error) {
	view, err := scanLocationView(s.db.QueryRow(ctx, locationViewSQL+` WHERE l.id = $1`, id))
	if err != nil {
		return nil, notFoundOr(s.logger, err, "location not found", "failed to get location")
	}
	return view, nil
}

func (s *CatalogReadStore) ListCompanies(ctx context.Context) ([]*queries.CompanyView, error) {
	rows, err := s.db.Query(ctx, companyViewSQL+` ORDER BY c.name`)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list companies", err)
	}
	return collect(s.logger, rows, scanCompanyView, "failed to scan company")
}

func (s *CatalogReadStore) FindCompanyByID(ctx context.Context, id uuid.UUID) (*queries.CompanyView, error) {
	view, err := scanCompanyView(s.db.QueryRow(ctx, companyViewSQL+` WHERE c.id = $1`, id))
	if err != nil {
		return nil, notFoundOr(s.logger, err, "company not found", "failed to get company")
	}
	return view, nil
}

func (s *CatalogReadStore) ListVehicleTypes(ctx context.Context) ([]*queries.VehicleTypeView, error) {
	rows, err := s.db.Query(ctx, `SELECT id, max_length, label FROM vehicle_types ORDER BY max_length`)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list vehicle types", err)
	}
	return collect(s.logger, rows, func(row pgx.Row) (*queries.VehicleTypeView, error) {
		vt, err := scanVehicleType(row)
		if err != nil {
			return nil, err
		}
		return &queries.VehicleTypeView{ID: vt.ID, MaxLength: vt.MaxLength, Label: vt.Label}, nil
	}, "failed to scan vehicle type")
}

func (s *CatalogReadStore) VehicleTypeByID(ctx context.Context, id uuid.UUID) (*catalog.VehicleType, error) {
	vt, err := scanVehicleType(s.db.QueryRow(ctx, `SELECT id, max_length, label FROM vehicle_types WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(s.logger, err, "vehicle type not found", "failed to get vehicle type")
	}
	return vt, nil
}

// LocationSnapshot loads a location together with its company, if any.
func (s *CatalogReadStore) LocationSnapshot(ctx context.Context, id uuid.UUID) (*shared.LocationSnapshot, error) {
	var (
		snap      shared.LocationSnapshot
		category  string
		companyID pgtype.UUID
		company   companyColumns
	)
	err := s.db.QueryRow(ctx, `
SELECT l.id, l.name, l.address, l.category, l.access_code, l.company_id,
       c.name, c.street, c.house_number, c.postal_code, c.city, c.email, c.phone
FROM locations l
LEFT JOIN companies c ON c.id = l.company_id
WHERE l.id = $1`, id).Scan(
		&snap.ID, &snap.Name, &snap.Address, &category, &snap.AccessCode, &companyID,
		&company.name, &company.street, &company.houseNumber, &company.postalCode, &company.city, &company.email, &company.phone,
	)
	if err != nil {
		return nil, notFoundOr(s.logger, err, "location not found", "failed to get location snapshot")
	}
	snap.Category = catalog.Category(category)
	if companyID.Valid {
		snap.Company = company.snapshot(uuid.UUID(companyID.Bytes))
	}
	return &snap, nil
}

func (s *CatalogReadStore) CompanySnapshot(ctx context.Context, id uuid.UUID) (*shared.CompanySnapshot, error) {
	var company companyColumns
	err := s.db.QueryRow(ctx, `
SELECT name, street, house_number, postal_code, city, email, phone FROM companies WHERE id = $1`, id).Scan(
		&company.name, &company.street, &company.houseNumber, &company.postalCode, &company.city, &company.email, &company.phone,
	)
	if err != nil {
		return nil, notFoundOr(s.logger, err, "company not found", "failed to get company snapshot")
	}
	return company.snapshot(id), nil
}

func (s *CatalogReadStore) CountLocationsByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM locations WHERE company_id = $1`, companyID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to count locations", err)
	}
	return n, nil
}

func (s *CatalogReadStore) CountBookingsByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE location_id = $1`, locationID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to count bookings", err)
	}
	return n, nil
}

// companyColumns scans a possibly absent company from a LEFT JOIN.
type companyColumns struct {
	name        pgtype.Text
	street      pgtype.Text
	houseNumber pgtype.Text
	postalCode  pgtype.Text
	city        pgtype.Text
	email       pgtype.Text
	phone       pgtype.Text
}

func (c companyColumns) snapshot(id uuid.UUID) *shared.CompanySnapshot {
	return &shared.CompanySnapshot{
		ID:          id,
		Name:        c.name.String,
		Street:      pgconv.StringPtrFromPgtype(c.street),
		HouseNumber: pgconv.StringPtrFromPgtype(c.houseNumber),
		PostalCode:  pgconv.StringPtrFromPgtype(c.postalCode),
		City:        pgconv.StringPtrFromPgtype(c.city),
		Email:       pgconv.StringPtrFromPgtype(c.email),
		Phone:       pgconv.StringPtrFromPgtype(c.phone),
	}
}

func scanLocationView(row pgx.Row) (*queries.LocationView, error) {
	var (
		v           queries.LocationView
		companyID   pgtype.UUID
		companyName pgtype.Text
		accessCode  pgtype.Text
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Address, &v.Category, &companyID, &companyName, &accessCode, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.CompanyID = pgconv.UUIDPtrFromPgtype(companyID)
	v.CompanyName = pgconv.StringPtrFromPgtype(companyName)
	v.AccessCode = pgconv.StringPtrFromPgtype(accessCode)
	return &v, nil
}

func scanCompanyView(row pgx.Row) (*queries.CompanyView, error) {
	var (
		v queries.CompanyView
		c companyColumns
	)
	if err := row.Scan(&v.ID, &v.Name, &c.street, &c.houseNumber, &c.postalCode, &c.city, &c.email, &c.phone,
		&v.LocationCount, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.Street = pgconv.StringPtrFromPgtype(c.street)
	v.HouseNumber = pgconv.StringPtrFromPgtype(c.houseNumber)
	v.PostalCode = pgconv.StringPtrFromPgtype(c.postalCode)
	v.City = pgconv.StringPtrFromPgtype(c.city)
	v.Email = pgconv.StringPtrFromPgtype(c.email)
	v.Phone = pgconv.StringPtrFromPgtype(c.phone)
	return &v, nil
}

func scanVehicleType(row pgx.Row) (*catalog.VehicleType, error) {
	var (
		vt        catalog.VehicleType
		maxLength pgtype.Numeric
	)
	if err := row.Scan(&vt.ID, &maxLength, &vt.Label); err != nil {
		return nil, err
	}
	length, err := pgconv.DecimalFromNumeric(maxLength)
	if err != nil {
		return nil, err
	}
	vt.MaxLength = length
	return &vt, nil
}

