package commands

import (
	"context"
	"time"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountInput struct {
	Code       string
	Type       billing.DiscountType
	Value      decimal.Decimal
	ValidFrom  *time.Time
	ValidTo    *time.Time
	LocationID *uuid.UUID
	UsageLimit *int
}

type DiscountCommands interface {
	CreateDiscount(ctx context.Context, in DiscountInput, origin audit.Origin) (uuid.UUID, error)
	ToggleDiscount(ctx context.Context, id uuid.UUID, origin audit.Origin) (bool, error)
	DeleteDiscount(ctx context.Context, id uuid.UUID, origin audit.Origin) error
}

type discountUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDiscountUseCase(uow shared.UnitOfWork, clock clock.Clock) DiscountCommands {
	return &discountUseCaseImpl{
		uow:   uow,
		clock: clock,
	}
}

func (uc *discountUseCaseImpl) CreateDiscount(ctx context.Context, in DiscountInput, origin audit.Origin) (uuid.UUID, error) {
	now := uc.clock.Now()
	discount, err := billing.NewDiscount(billing.DiscountParams(in), now)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if in.LocationID != nil {
			if _, err := tx.Reads().LocationByID(ctx, *in.LocationID); err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return catalog.ErrLocationNotFound
				}
				return err
			}
		}
		if err := tx.Discounts().Create(ctx, discount); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return billing.ErrDuplicateDiscountCode
			}
			return err
		}
		id := discount.ID()
		return recordAdminEvent(ctx, tx, audit.ActionDiscountCreated, audit.EntityDiscount, &id, map[string]any{
			"code":  discount.Code(),
			"type":  string(discount.Type()),
			"value": discount.Value().StringFixed(2),
		}, origin, now)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return discount.ID(), nil
}

func (uc *discountUseCaseImpl) ToggleDiscount(ctx context.Context, id uuid.UUID, origin audit.Origin) (bool, error) {
	var active bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		active, err = tx.Discounts().Toggle(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return billing.ErrDiscountNotFound
			}
			return err
		}
		return recordAdminEvent(ctx, tx, audit.ActionDiscountToggled, audit.EntityDiscount, &id,
			map[string]any{"is_active": active}, origin, uc.clock.Now())
	})
	return active, err
}

func (uc *discountUseCaseImpl) DeleteDiscount(ctx context.Context, id uuid.UUID, origin audit.Origin) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Discounts().Delete(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return billing.ErrDiscountNotFound
		}
		return recordAdminEvent(ctx, tx, audit.ActionDiscountDeleted, audit.EntityDiscount, &id, nil, origin, uc.clock.Now())
	})
}
