package commands

import (
	"context"
	"time"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RuleInput struct {
	LocationID    uuid.UUID
	VehicleTypeID uuid.UUID
	Category      catalog.Category
	BasePrice     decimal.Decimal
	ValidFrom     *time.Time
	ValidTo       *time.Time
	Priority      int
}

type OverrideInput struct {
	LocationID    uuid.UUID
	VehicleTypeID uuid.UUID
	Category      catalog.Category
	Price         decimal.Decimal
	ValidFrom     *time.Time
	ValidTo       *time.Time
	Reason        *string
}

type PricingCommands interface {
	CreateRule(ctx context.Context, in RuleInput, origin audit.Origin) (uuid.UUID, error)
	DeleteRule(ctx context.Context, id uuid.UUID, origin audit.Origin) error
	CreateOverride(ctx context.Context, in OverrideInput, origin audit.Origin) (uuid.UUID, error)
	DeleteOverride(ctx context.Context, id uuid.UUID, origin audit.Origin) error
	SetBasePrice(ctx context.Context, value decimal.Decimal, origin audit.Origin) error
}

type pricingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPricingUseCase(uow shared.UnitOfWork, clock clock.Clock) PricingCommands {
	return &pricingUseCaseImpl{
		uow:   uow,
		clock: clock,
	}
}

func (uc *pricingUseCaseImpl) CreateRule(ctx context.Context, in RuleInput, origin audit.Origin) (uuid.UUID, error) {
	now := uc.clock.Now()
	target := pricing.Target{LocationID: in.LocationID, VehicleTypeID: in.VehicleTypeID, Category: in.Category}
	rule, err := pricing.NewRule(target, in.BasePrice, pricing.ValidityWindow{From: in.ValidFrom, To: in.ValidTo}, in.Priority, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureTarget(ctx, tx, target); err != nil {
			return err
		}
		if err := tx.Pricing().CreateRule(ctx, rule); err != nil {
			return err
		}
		return recordAdminEvent(ctx, tx, audit.ActionPricingRuleCreated, audit.EntityPricingRule, &rule.ID, map[string]any{
			"location_id":     in.LocationID,
			"vehicle_type_id": in.VehicleTypeID,
			"category":        in.Category.String(),
			"base_price":      in.BasePrice.StringFixed(2),
			"priority":        in.Priority,
		}, origin, now)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rule.ID, nil
}

func (uc *pricingUseCaseImpl) DeleteRule(ctx context.Context, id uuid.UUID, origin audit.Origin) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Pricing().DeleteRule(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return pricing.ErrRuleNotFound
		}
		return recordAdminEvent(ctx, tx, audit.ActionPricingRuleDeleted, audit.EntityPricingRule, &id, nil, origin, uc.clock.Now())
	})
}

func (uc *pricingUseCaseImpl) CreateOverride(ctx context.Context, in OverrideInput, origin audit.Origin) (uuid.UUID, error) {
	now := uc.clock.Now()
	target := pricing.Target{LocationID: in.LocationID, VehicleTypeID: in.VehicleTypeID, Category: in.Category}
	override, err := pricing.NewOverride(target, in.Price, in.ValidFrom, in.ValidTo, in.Reason, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureTarget(ctx, tx, target); err != nil {
			return err
		}
		if err := tx.Pricing().CreateOverride(ctx, override); err != nil {
			return err
		}
		return recordAdminEvent(ctx, tx, audit.ActionOverrideCreated, audit.EntityOverride, &override.ID, map[string]any{
			"location_id":    in.LocationID,
			"override_price": in.Price.StringFixed(2),
			"valid_from":     in.ValidFrom,
			"valid_to":       in.ValidTo,
		}, origin, now)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return override.ID, nil
}

func (uc *pricingUseCaseImpl) DeleteOverride(ctx context.Context, id uuid.UUID, origin audit.Origin) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Pricing().DeleteOverride(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return pricing.ErrOverrideNotFound
		}
		return recordAdminEvent(ctx, tx, audit.ActionOverrideDeleted, audit.EntityOverride, &id, nil, origin, uc.clock.Now())
	})
}

func (uc *pricingUseCaseImpl) SetBasePrice(ctx context.Context, value decimal.Decimal, origin audit.Origin) error {
	if value.IsNegative() {
		return pricing.ErrInvalidBasePrice
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		previous, err := tx.Reads().BasePrice(ctx)
		if err != nil {
			return err
		}
		if err := tx.Pricing().SetBasePrice(ctx, value); err != nil {
			return err
		}

		metadata := map[string]any{"base_price": value.StringFixed(2)}
		if previous != nil {
			metadata["previous"] = previous.StringFixed(2)
		}
		return recordAdminEvent(ctx, tx, audit.ActionBasePriceUpdated, audit.EntitySetting, nil, metadata, origin, uc.clock.Now())
	})
}

func ensureTarget(ctx context.Context, tx shared.Tx, target pricing.Target) error {
	if _, err := tx.Reads().LocationByID(ctx, target.LocationID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return catalog.ErrLocationNotFound
		}
		return err
	}
	if _, err := tx.Reads().VehicleTypeByID(ctx, target.VehicleTypeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return catalog.ErrInvalidVehicleType
		}
		return err
	}
	return nil
}
