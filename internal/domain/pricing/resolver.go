package pricing

import (
	"time"

	"parkspace-booking/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Source string

const (
	SourceOverride Source = "override"
	SourceRule     Source = "rule"
	SourceFormula  Source = "formula"
	SourceLegacy   Source = "legacy"
)

type Quote struct {
	Price    decimal.Decimal
	Source   Source
	SourceID *uuid.UUID
}

// ResolveInput carries every value resolution depends on, including the base price
// setting, so that Resolve has no hidden inputs.
type ResolveInput struct {
	Date           time.Time
	VehicleType    catalog.VehicleType
	Category       catalog.Category
	Overrides      []Override
	Rules          []Rule
	BasePrice      decimal.Decimal
	FormulaEnabled bool
	LegacyPrice    *decimal.Decimal
}

type Resolver interface {
	Resolve(in ResolveInput) (Quote, error)
}

// LayeredResolver picks the first applicable source: override, rule, formula, legacy.
type LayeredResolver struct{}

func NewLayeredResolver() *LayeredResolver {
	return &LayeredResolver{}
}

func (LayeredResolver) Resolve(in ResolveInput) (Quote, error) {
	if !in.Category.IsValid() {
		return Quote{}, catalog.ErrInvalidCategory
	}

	if o := pickOverride(in.Overrides, in.Date); o != nil {
		id := o.ID
		return Quote{Price: o.Price, Source: SourceOverride, SourceID: &id}, nil
	}

	if r := pickRule(in.Rules, in.Date); r != nil {
		id := r.ID
		return Quote{Price: r.BasePrice, Source: SourceRule, SourceID: &id}, nil
	}

	if in.FormulaEnabled {
		return Quote{
			Price:  FormulaPrice(in.BasePrice, in.VehicleType.MaxLength, in.Category),
			Source: SourceFormula,
		}, nil
	}

	if in.LegacyPrice != nil {
		return Quote{Price: *in.LegacyPrice, Source: SourceLegacy}, nil
	}

	return Quote{}, ErrNoPriceRule
}

func pickOverride(candidates []Override, date time.Time) *Override {
	var best *Override
	for i := range candidates {
		o := &candidates[i]
		if !o.Window.Contains(date) {
			continue
		}
		if best == nil || newer(o.CreatedAt, o.ID, best.CreatedAt, best.ID) {
			best = o
		}
	}
	return best
}

func pickRule(candidates []Rule, date time.Time) *Rule {
	var best *Rule
	for i := range candidates {
		r := &candidates[i]
		if !r.Window.Contains(date) {
			continue
		}
		switch {
		case best == nil:
			best = r
		case r.Priority != best.Priority:
			if r.Priority > best.Priority {
				best = r
			}
		case newer(r.CreatedAt, r.ID, best.CreatedAt, best.ID):
			best = r
		}
	}
	return best
}

// newer orders by creation time, then by id so equal timestamps still give one winner.
func newer(aAt time.Time, aID uuid.UUID, bAt time.Time, bID uuid.UUID) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return aID.String() > bID.String()
}
