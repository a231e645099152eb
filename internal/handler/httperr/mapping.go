package httperr

import (
	"net/http"

	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/domain/blackout"
	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/contract"
	"parkspace-booking/internal/domain/invite"
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/domain/signature"
	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	KindValidation          = "validation"
	KindInvalidSignature    = "invalid_signature"
	KindDateConflict        = "date_conflict"
	KindNoPriceRule         = "no_price_rule"
	KindInvalidVehicleType  = "invalid_vehicle_type"
	KindInvalidCategory     = "invalid_category"
	KindNoActiveTemplate    = "no_active_template"
	KindInvalidDiscount     = "invalid_discount"
	KindIdempotencyConflict = "idempotency_conflict"
	KindDuplicate           = "duplicate"
	KindNotFound            = "not_found"
	KindAlreadyCompleted    = "already_completed"
	KindInvalidTransition   = "invalid_transition"
	KindHasDependents       = "has_dependents"
	KindUnauthorized        = "unauthorized"
	KindInternal            = "internal"
)

const internalMessage = "Internal server error"

type Mapping struct {
	Status  int
	Kind    string
	Message string
	Detail  any
}

type rule struct {
	targets []error
	status  int
	kind    string
}

// Order matters: marked errors match their first rule.
var rules = []rule{
	{[]error{signature.ErrInvalidSignature}, http.StatusUnprocessableEntity, KindInvalidSignature},
	{[]error{blackout.ErrDateConflict}, http.StatusConflict, KindDateConflict},
	{[]error{pricing.ErrNoPriceRule}, http.StatusUnprocessableEntity, KindNoPriceRule},
	{[]error{catalog.ErrInvalidVehicleType}, http.StatusUnprocessableEntity, KindInvalidVehicleType},
	{[]error{catalog.ErrInvalidCategory}, http.StatusUnprocessableEntity, KindInvalidCategory},
	{[]error{contract.ErrNoActiveTemplate}, http.StatusUnprocessableEntity, KindNoActiveTemplate},
	{[]error{billing.ErrInvalidDiscount}, http.StatusConflict, KindInvalidDiscount},
	{[]error{errs.ErrIdempotencyConflict}, http.StatusConflict, KindIdempotencyConflict},
	{[]error{billing.ErrDuplicateDiscountCode, catalog.ErrDuplicateCompany}, http.StatusConflict, KindDuplicate},
	{[]error{errs.ErrNotFound}, http.StatusNotFound, KindNotFound},
	{[]error{booking.ErrAlreadyCompleted}, http.StatusConflict, KindAlreadyCompleted},
	{[]error{booking.ErrInvalidTransition}, http.StatusConflict, KindInvalidTransition},
	{[]error{errs.ErrHasDependents}, http.StatusConflict, KindHasDependents},
	{[]error{errs.ErrUnauthorized}, http.StatusUnauthorized, KindUnauthorized},
	{[]error{
		errs.ErrDomainValidation,
		caldate.ErrInvalidDate,
		booking.ErrInvalidDateRange,
		booking.ErrInvalidCustomer,
		booking.ErrInvalidBillingCycle,
		booking.ErrInvalidNoticePeriod,
		booking.ErrInvalidStatus,
		blackout.ErrInvalidDateRange,
		billing.ErrInvalidDiscountCode,
		billing.ErrInvalidDiscountType,
		billing.ErrInvalidDiscountValue,
		billing.ErrInvalidUsageLimit,
		billing.ErrInvalidDepositMultiplier,
		pricing.ErrInvalidWindow,
		pricing.ErrWindowRequired,
		pricing.ErrNegativePrice,
		pricing.ErrInvalidPriority,
		pricing.ErrInvalidBasePrice,
		catalog.ErrInvalidName,
		catalog.ErrInvalidAddress,
		catalog.ErrInvalidEmail,
		contract.ErrInvalidScope,
		contract.ErrScopeIDRequired,
		contract.ErrScopeIDNotAllowed,
		contract.ErrBodyTooShort,
		contract.ErrInvalidName,
		invite.ErrInvalidExpiry,
		invite.ErrInvalidEmail,
	}, http.StatusBadRequest, KindValidation},
}

// Classify maps a use case error to its HTTP representation. Unknown errors
// become a 500 with a generic message.
func Classify(err error) Mapping {
	for _, r := range rules {
		if !errs.IsAny(err, r.targets...) {
			continue
		}
		m := Mapping{Status: r.status, Kind: r.kind, Message: err.Error()}
		switch r.kind {
		case KindDateConflict:
			m.Detail = conflictDetail(err)
		case KindInvalidSignature:
			m.Detail = gin.H{"reason": signatureReason(err)}
		}
		return m
	}
	return Mapping{Status: http.StatusInternalServerError, Kind: KindInternal, Message: internalMessage}
}

// KindFor names the kind a bare status maps to.
func KindFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusInternalServerError:
		return KindInternal
	default:
		return ""
	}
}

func conflictDetail(err error) any {
	periods, ok := blackout.AsConflict(err)
	if !ok {
		return nil
	}
	conflicts := make([]gin.H, len(periods))
	for i, p := range periods {
		conflicts[i] = gin.H{
			"start_date": caldate.Format(p.StartDate),
			"end_date":   caldate.Format(p.EndDate),
		}
	}
	return gin.H{"conflicts": conflicts}
}

func signatureReason(err error) string {
	switch {
	case errs.Is(err, signature.ErrEmptySignature):
		return "empty"
	case errs.Is(err, signature.ErrTooSimple):
		return "too_simple"
	case errs.Is(err, signature.ErrTooSmall):
		return "too_small"
	default:
		return "invalid"
	}
}
