package commands

import (
	"context"
	"time"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/invite"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/usecase/shared"
)

type InviteResult struct {
	Token     string
	ExpiresAt time.Time
	InviteURL string
}

type InviteCommands interface {
	CreateInvite(ctx context.Context, in invite.Params, origin audit.Origin) (*InviteResult, error)
}

type inviteUseCaseImpl struct {
	uow    shared.UnitOfWork
	notify shared.NotifySettings
	clock  clock.Clock
}

func NewInviteUseCase(uow shared.UnitOfWork, notifySettings shared.NotifySettings, clock clock.Clock) InviteCommands {
	return &inviteUseCaseImpl{
		uow:    uow,
		notify: notifySettings,
		clock:  clock,
	}
}

func (uc *inviteUseCaseImpl) CreateInvite(ctx context.Context, in invite.Params, origin audit.Origin) (*InviteResult, error) {
	now := uc.clock.Now()
	token, err := invite.New(in, now)
	if err != nil {
		return nil, err
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
		if in.VehicleTypeID != nil {
			if _, err := tx.Reads().VehicleTypeByID(ctx, *in.VehicleTypeID); err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return catalog.ErrInvalidVehicleType
				}
				return err
			}
		}
		if err := tx.Invites().Create(ctx, token); err != nil {
			return err
		}
		// the token itself is a credential and stays out of the log
		return recordAdminEvent(ctx, tx, audit.ActionInviteCreated, audit.EntityInvite, nil, map[string]any{
			"location_id": in.LocationID,
			"expires_at":  token.ExpiresAt,
		}, origin, now)
	})
	if err != nil {
		return nil, err
	}

	return &InviteResult{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		InviteURL: uc.notify.PublicBaseURL + "/booking?invite=" + token.Token,
	}, nil
}
