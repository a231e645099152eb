package booking

import "parkspace-booking/internal/pkg/errs"

var (
	ErrBookingNotFound     = errs.NewKind("booking not found", errs.ErrNotFound)
	ErrAlreadyCompleted    = errs.New("booking is already completed")
	ErrInvalidTransition   = errs.New("invalid booking status transition")
	ErrInvalidDateRange    = errs.New("end date must be after start date")
	ErrInvalidBillingCycle = errs.New("billing cycle must be monthly, quarterly or annual")
	ErrInvalidNoticePeriod = errs.New("notice period must be between 0 and 365 days")
	ErrInvalidCustomer     = errs.New("invalid customer data")
	ErrInvalidStatus       = errs.New("invalid booking status")
)
