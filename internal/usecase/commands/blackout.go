package commands

import (
	"context"
	"time"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/blackout"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BlackoutInput struct {
	LocationID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
}

type BlackoutCommands interface {
	CreateBlackout(ctx context.Context, in BlackoutInput, origin audit.Origin) (uuid.UUID, error)
	DeleteBlackout(ctx context.Context, id uuid.UUID, origin audit.Origin) error
}

type blackoutUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBlackoutUseCase(uow shared.UnitOfWork, clock clock.Clock) BlackoutCommands {
	return &blackoutUseCaseImpl{
		uow:   uow,
		clock: clock,
	}
}

func (uc *blackoutUseCaseImpl) CreateBlackout(ctx context.Context, in BlackoutInput, origin audit.Origin) (uuid.UUID, error) {
	now := uc.clock.Now()
	b, err := blackout.New(in.LocationID, in.StartDate, in.EndDate, in.Reason, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().LocationByID(ctx, in.LocationID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return catalog.ErrLocationNotFound
			}
			return err
		}
		if err := tx.Blackouts().Create(ctx, b); err != nil {
			return err
		}
		return recordAdminEvent(ctx, tx, audit.ActionBlackoutCreated, audit.EntityBlackout, &b.ID, map[string]any{
			"location_id": in.LocationID,
			"start_date":  caldate.Format(in.StartDate),
			"end_date":    caldate.Format(in.EndDate),
		}, origin, now)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID, nil
}

func (uc *blackoutUseCaseImpl) DeleteBlackout(ctx context.Context, id uuid.UUID, origin audit.Origin) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Blackouts().Delete(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return blackout.ErrNotFound
		}
		return recordAdminEvent(ctx, tx, audit.ActionBlackoutDeleted, audit.EntityBlackout, &id, nil, origin, uc.clock.Now())
	})
}
