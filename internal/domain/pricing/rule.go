package pricing

import (
	"time"

	"parkspace-booking/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinPriority = 0
	MaxPriority = 100
)

// Target identifies the (location, vehicle type, category) tuple a price applies to.
type Target struct {
	LocationID    uuid.UUID
	VehicleTypeID uuid.UUID
	Category      catalog.Category
}

type Rule struct {
	ID        uuid.UUID
	Target    Target
	BasePrice decimal.Decimal
	Window    ValidityWindow
	Priority  int
	CreatedAt time.Time
}

func NewRule(target Target, basePrice decimal.Decimal, window ValidityWindow, priority int, now time.Time) (*Rule, error) {
	if !target.Category.IsValid() {
		return nil, catalog.ErrInvalidCategory
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if priority < MinPriority || priority > MaxPriority {
		return nil, ErrInvalidPriority
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	return &Rule{
		ID:        uuid.New(),
		Target:    target,
		BasePrice: basePrice,
		Window:    window,
		Priority:  priority,
		CreatedAt: now,
	}, nil
}

type Override struct {
	ID        uuid.UUID
	Target    Target
	Price     decimal.Decimal
	Window    ValidityWindow
	Reason    *string
	CreatedAt time.Time
}

func NewOverride(target Target, price decimal.Decimal, from, to *time.Time, reason *string, now time.Time) (*Override, error) {
	if !target.Category.IsValid() {
		return nil, catalog.ErrInvalidCategory
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if from == nil || to == nil {
		return nil, ErrWindowRequired
	}
	window := ValidityWindow{From: from, To: to}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	return &Override{
		ID:        uuid.New(),
		Target:    target,
		Price:     price,
		Window:    window,
		Reason:    reason,
		CreatedAt: now,
	}, nil
}
