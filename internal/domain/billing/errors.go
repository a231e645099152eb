package billing

import "parkspace-booking/internal/pkg/errs"

var (
	ErrInvalidDiscount          = errs.New("invalid discount")
	ErrDiscountExhausted        = errs.NewKind("discount usage limit reached", ErrInvalidDiscount)
	ErrInvalidDiscountCode      = errs.New("discount code must be 2 to 50 alphanumeric characters")
	ErrInvalidDiscountType      = errs.New("discount type must be percent or amount")
	ErrInvalidDiscountValue     = errs.New("invalid discount value")
	ErrInvalidUsageLimit        = errs.New("usage limit must be positive")
	ErrInvalidDepositMultiplier = errs.New("deposit multiplier must be between 0 and 10")
	ErrDiscountNotFound         = errs.NewKind("discount not found", errs.ErrNotFound)
	ErrDuplicateDiscountCode    = errs.New("discount code already exists")
)
