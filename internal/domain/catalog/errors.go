package catalog

import "parkspace-booking/internal/pkg/errs"

var (
	ErrInvalidCategory     = errs.New("invalid category")
	ErrInvalidVehicleType  = errs.New("invalid vehicle type")
	ErrLocationNotFound    = errs.NewKind("location not found", errs.ErrNotFound)
	ErrCompanyNotFound     = errs.NewKind("company not found", errs.ErrNotFound)
	ErrInvalidName         = errs.New("name must be between 2 and 100 characters")
	ErrInvalidAddress      = errs.New("address must be between 5 and 500 characters")
	ErrInvalidEmail        = errs.New("invalid email address")
	ErrCompanyHasLocations = errs.NewKind("company still has locations", errs.ErrHasDependents)
	ErrDuplicateCompany    = errs.New("company name already exists")
	ErrLocationHasBookings = errs.NewKind("location still has bookings", errs.ErrHasDependents)
)
