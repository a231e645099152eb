package pricing

import "parkspace-booking/internal/pkg/errs"

var (
	ErrNoPriceRule      = errs.New("no price rule applies")
	ErrInvalidWindow    = errs.New("valid_to must not be before valid_from")
	ErrWindowRequired   = errs.New("override requires valid_from and valid_to")
	ErrNegativePrice    = errs.New("price must not be negative")
	ErrInvalidPriority  = errs.New("priority must be between 0 and 100")
	ErrRuleNotFound     = errs.NewKind("pricing rule not found", errs.ErrNotFound)
	ErrOverrideNotFound = errs.NewKind("pricing override not found", errs.ErrNotFound)
	ErrInvalidBasePrice = errs.New("base price must not be negative")
)
