package contract

import "parkspace-booking/internal/pkg/errs"

var (
	ErrNoActiveTemplate  = errs.New("no active contract template")
	ErrTemplateNotFound  = errs.NewKind("contract template not found", errs.ErrNotFound)
	ErrInvalidScope      = errs.New("scope type must be global, company or location")
	ErrScopeIDRequired   = errs.New("scope id is required unless scope is global")
	ErrScopeIDNotAllowed = errs.New("global templates must not have a scope id")
	ErrBodyTooShort      = errs.New("template body must be at least 10 characters")
	ErrInvalidName       = errs.New("template name must be between 2 and 100 characters")
)
