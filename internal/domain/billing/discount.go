package billing

import (
	"regexp"
	"strings"
	"time"

	"parkspace-booking/internal/domain/money"
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountAmount  DiscountType = "amount"
)

func (t DiscountType) IsValid() bool {
	return t == DiscountPercent || t == DiscountAmount
}

var codePattern = regexp.MustCompile(`^[A-Z0-9]{2,50}$`)

// NormalizeCode uppercases and trims a code; lookups are case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type Discount struct {
	id           uuid.UUID
	code         string
	discountType DiscountType
	value        decimal.Decimal
	window       pricing.ValidityWindow
	locationID   *uuid.UUID
	usageLimit   *int
	usageCount   int
	isActive     bool
	createdAt    time.Time
}

type DiscountParams struct {
	Code       string
	Type       DiscountType
	Value      decimal.Decimal
	ValidFrom  *time.Time
	ValidTo    *time.Time
	LocationID *uuid.UUID
	UsageLimit *int
}

func NewDiscount(p DiscountParams, now time.Time) (*Discount, error) {
	code := NormalizeCode(p.Code)
	if !codePattern.MatchString(code) {
		return nil, ErrInvalidDiscountCode
	}
	if !p.Type.IsValid() {
		return nil, ErrInvalidDiscountType
	}
	if !p.Value.IsPositive() {
		return nil, errs.Wrap(ErrInvalidDiscountValue, "value must be positive")
	}
	if p.Type == DiscountPercent && p.Value.GreaterThan(money.Hundred) {
		return nil, errs.Wrap(ErrInvalidDiscountValue, "percent must not exceed 100")
	}
	if p.UsageLimit != nil && *p.UsageLimit < 1 {
		return nil, ErrInvalidUsageLimit
	}
	window := pricing.ValidityWindow{From: p.ValidFrom, To: p.ValidTo}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	return &Discount{
		id:           uuid.New(),
		code:         code,
		discountType: p.Type,
		value:        p.Value,
		window:       window,
		locationID:   p.LocationID,
		usageLimit:   p.UsageLimit,
		isActive:     true,
		createdAt:    now,
	}, nil
}

func ReconstructDiscount(
	id uuid.UUID,
	code string,
	discountType DiscountType,
	value decimal.Decimal,
	window pricing.ValidityWindow,
	locationID *uuid.UUID,
	usageLimit *int,
	usageCount int,
	isActive bool,
	createdAt time.Time,
) *Discount {
	return &Discount{
		id:           id,
		code:         code,
		discountType: discountType,
		value:        value,
		window:       window,
		locationID:   locationID,
		usageLimit:   usageLimit,
		usageCount:   usageCount,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

// Evaluate reports whether the discount may be used for a booking at the given date and location.
func (d *Discount) Evaluate(at time.Time, locationID uuid.UUID) error {
	switch {
	case !d.isActive:
		return errs.Wrap(ErrInvalidDiscount, "inactive")
	case !d.window.Contains(at):
		return errs.Wrap(ErrInvalidDiscount, "outside validity window")
	case d.locationID != nil && *d.locationID != locationID:
		return errs.Wrap(ErrInvalidDiscount, "not valid for this location")
	case d.usageLimit != nil && d.usageCount >= *d.usageLimit:
		return ErrDiscountExhausted
	}
	return nil
}

// Apply computes the discount amount for the given base; never negative.
func (d *Discount) Apply(amount decimal.Decimal) decimal.Decimal {
	var off decimal.Decimal
	switch d.discountType {
	case DiscountPercent:
		off = amount.Mul(d.value).Div(money.Hundred)
	case DiscountAmount:
		off = decimal.Min(d.value, amount)
	}
	return money.NonNegative(off)
}

func (d *Discount) ID() uuid.UUID                  { return d.id }
func (d *Discount) Code() string                   { return d.code }
func (d *Discount) Type() DiscountType             { return d.discountType }
func (d *Discount) Value() decimal.Decimal         { return d.value }
func (d *Discount) Window() pricing.ValidityWindow { return d.window }
func (d *Discount) LocationID() *uuid.UUID         { return d.locationID }
func (d *Discount) UsageLimit() *int               { return d.usageLimit }
func (d *Discount) UsageCount() int                { return d.usageCount }
func (d *Discount) IsActive() bool                 { return d.isActive }
func (d *Discount) CreatedAt() time.Time           { return d.createdAt }
