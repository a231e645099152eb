package queries

import (
	"context"
	"log/slog"
	"time"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PricingQueries interface {
	Resolve(ctx context.Context, target pricing.Target, date time.Time) (*PriceQuoteView, error)
	// PriceTable quotes every vehicle type and category at a location; combinations
	// without a price are left out.
	PriceTable(ctx context.Context, locationID uuid.UUID, date time.Time) ([]*PriceTableEntry, error)
	Config(ctx context.Context) (*PricingConfigView, error)
	ListRules(ctx context.Context, locationID *uuid.UUID) ([]*PricingRuleView, error)
	ListOverrides(ctx context.Context, locationID *uuid.UUID) ([]*PricingOverrideView, error)
}

type PricingReadStore interface {
	ListRules(ctx context.Context, locationID *uuid.UUID) ([]*PricingRuleView, error)
	ListOverrides(ctx context.Context, locationID *uuid.UUID) ([]*PricingOverrideView, error)
}

type pricingQueriesImpl struct {
	store    PricingReadStore
	catalog  CatalogReadStore
	inputs   shared.PriceInputs
	resolver pricing.Resolver
	settings shared.PricingSettings
	logger   *slog.Logger
}

func NewPricingQueries(
	store PricingReadStore,
	catalogStore CatalogReadStore,
	inputs shared.PriceInputs,
	resolver pricing.Resolver,
	settings shared.PricingSettings,
	logger *slog.Logger,
) PricingQueries {
	return &pricingQueriesImpl{
		store:    store,
		catalog:  catalogStore,
		inputs:   inputs,
		resolver: resolver,
		settings: settings,
		logger:   logger,
	}
}

func (q *pricingQueriesImpl) Resolve(ctx context.Context, target pricing.Target, date time.Time) (*PriceQuoteView, error) {
	if _, err := q.catalog.FindLocationByID(ctx, target.LocationID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrLocationNotFound
		}
		return nil, err
	}

	quote, _, err := shared.QuotePrice(ctx, q.inputs, q.resolver, q.settings, target, date)
	if err != nil {
		return nil, err
	}
	return &PriceQuoteView{
		LocationID:    target.LocationID,
		VehicleTypeID: target.VehicleTypeID,
		Category:      target.Category.String(),
		Date:          caldate.Format(date),
		Price:         quote.Price,
		Source:        string(quote.Source),
		SourceID:      quote.SourceID,
	}, nil
}

func (q *pricingQueriesImpl) PriceTable(ctx context.Context, locationID uuid.UUID, date time.Time) ([]*PriceTableEntry, error) {
	if _, err := q.catalog.FindLocationByID(ctx, locationID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrLocationNotFound
		}
		return nil, err
	}

	vehicleTypes, err := q.catalog.ListVehicleTypes(ctx)
	if err != nil {
		return nil, err
	}

	table := make([]*PriceTableEntry, 0, len(vehicleTypes)*len(catalog.Categories))
	for _, vt := range vehicleTypes {
		for _, category := range catalog.Categories {
			target := pricing.Target{LocationID: locationID, VehicleTypeID: vt.ID, Category: category}
			quote, _, err := shared.QuotePrice(ctx, q.inputs, q.resolver, q.settings, target, date)
			if err != nil {
				if errs.Is(err, pricing.ErrNoPriceRule) {
					q.logger.Debug("no price for combination", "location_id", locationID, "vehicle_type_id", vt.ID, "category", category)
					continue
				}
				return nil, err
			}
			table = append(table, &PriceTableEntry{
				VehicleTypeID: vt.ID,
				VehicleLabel:  vt.Label,
				MaxLength:     vt.MaxLength,
				Category:      category.String(),
				Price:         quote.Price,
				Source:        string(quote.Source),
			})
		}
	}
	return table, nil
}

func (q *pricingQueriesImpl) Config(ctx context.Context) (*PricingConfigView, error) {
	base, err := shared.EffectiveBasePrice(ctx, q.inputs, q.settings)
	if err != nil {
		return nil, err
	}

	vehicleTypes, err := q.catalog.ListVehicleTypes(ctx)
	if err != nil {
		return nil, err
	}

	factors := make(map[string]decimal.Decimal, len(catalog.Categories))
	for _, c := range catalog.Categories {
		factors[c.String()] = c.Factor()
	}

	rows := make([]FormulaRow, 0, len(vehicleTypes))
	for _, vt := range vehicleTypes {
		prices := make(map[string]decimal.Decimal, len(catalog.Categories))
		for _, c := range catalog.Categories {
			prices[c.String()] = pricing.FormulaPrice(base, vt.MaxLength, c)
		}
		rows = append(rows, FormulaRow{
			VehicleTypeID: vt.ID,
			VehicleLabel:  vt.Label,
			MaxLength:     vt.MaxLength,
			Prices:        prices,
		})
	}

	return &PricingConfigView{
		BasePrice:        base,
		FormulaEnabled:   q.settings.FormulaEnabled,
		CategoryFactors:  factors,
		LengthThreshold:  pricing.SurchargeThreshold,
		LengthStep:       pricing.SurchargeStep,
		SurchargePerStep: pricing.SurchargePerStep,
		PriceTable:       rows,
	}, nil
}

func (q *pricingQueriesImpl) ListRules(ctx context.Context, locationID *uuid.UUID) ([]*PricingRuleView, error) {
	return q.store.ListRules(ctx, locationID)
}

func (q *pricingQueriesImpl) ListOverrides(ctx context.Context, locationID *uuid.UUID) ([]*PricingOverrideView, error) {
	return q.store.ListOverrides(ctx, locationID)
}
