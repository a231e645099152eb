package shared

import (
	"context"
	"time"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/config"

	"github.com/shopspring/decimal"
)

type PricingSettings struct {
	FormulaEnabled   bool
	DefaultBasePrice decimal.Decimal
}

func NewPricingSettings(cfg config.Config) PricingSettings {
	return PricingSettings{
		FormulaEnabled:   cfg.Pricing.FormulaFallback,
		DefaultBasePrice: cfg.Pricing.DefaultBasePrice,
	}
}

// EffectiveBasePrice reads the base_price setting, falling back to the configured default.
func EffectiveBasePrice(ctx context.Context, src PriceInputs, settings PricingSettings) (decimal.Decimal, error) {
	base, err := src.BasePrice(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if base == nil {
		return settings.DefaultBasePrice, nil
	}
	return *base, nil
}

// QuotePrice loads the stored inputs for target and resolves the monthly price at date.
func QuotePrice(
	ctx context.Context,
	src PriceInputs,
	resolver pricing.Resolver,
	settings PricingSettings,
	target pricing.Target,
	date time.Time,
) (pricing.Quote, *catalog.VehicleType, error) {
	if !target.Category.IsValid() {
		return pricing.Quote{}, nil, catalog.ErrInvalidCategory
	}

	vt, err := src.VehicleTypeByID(ctx, target.VehicleTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return pricing.Quote{}, nil, catalog.ErrInvalidVehicleType
		}
		return pricing.Quote{}, nil, err
	}

	candidates, err := src.PriceCandidates(ctx, target)
	if err != nil {
		return pricing.Quote{}, nil, err
	}

	base, err := EffectiveBasePrice(ctx, src, settings)
	if err != nil {
		return pricing.Quote{}, nil, err
	}

	quote, err := resolver.Resolve(pricing.ResolveInput{
		Date:           date,
		VehicleType:    *vt,
		Category:       target.Category,
		Overrides:      candidates.Overrides,
		Rules:          candidates.Rules,
		BasePrice:      base,
		FormulaEnabled: settings.FormulaEnabled,
		LegacyPrice:    candidates.Legacy,
	})
	if err != nil {
		return pricing.Quote{}, nil, err
	}
	return quote, vt, nil
}
