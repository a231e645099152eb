package commands

import (
	"context"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/contract"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type TemplateInput struct {
	Name      string
	ScopeType contract.ScopeType
	ScopeID   *uuid.UUID
	Body      string
}

type CreateTemplateResult struct {
	TemplateID uuid.UUID
	Version    int
}

type TemplateCommands interface {
	CreateTemplate(ctx context.Context, in TemplateInput, origin audit.Origin) (*CreateTemplateResult, error)
	ActivateTemplate(ctx context.Context, id uuid.UUID, origin audit.Origin) error
}

type templateUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTemplateUseCase(uow shared.UnitOfWork, clock clock.Clock) TemplateCommands {
	return &templateUseCaseImpl{
		uow:   uow,
		clock: clock,
	}
}

func (uc *templateUseCaseImpl) CreateTemplate(ctx context.Context, in TemplateInput, origin audit.Origin) (*CreateTemplateResult, error) {
	now := uc.clock.Now()
	// validate shape before taking the version lock
	if _, err := contract.NewTemplate(in.Name, in.ScopeType, in.ScopeID, in.Body, 1, now); err != nil {
		return nil, err
	}

	var result *CreateTemplateResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureScope(ctx, tx, in.ScopeType, in.ScopeID); err != nil {
			return err
		}

		current, err := tx.Templates().MaxVersion(ctx, in.Name)
		if err != nil {
			return err
		}
		tmpl, err := contract.NewTemplate(in.Name, in.ScopeType, in.ScopeID, in.Body, current+1, now)
		if err != nil {
			return err
		}
		if err := tx.Templates().Create(ctx, tmpl); err != nil {
			return err
		}

		id := tmpl.ID()
		result = &CreateTemplateResult{TemplateID: id, Version: tmpl.Version()}
		return recordAdminEvent(ctx, tx, audit.ActionTemplateCreated, audit.EntityTemplate, &id, map[string]any{
			"name":       tmpl.Name(),
			"version":    tmpl.Version(),
			"scope_type": string(tmpl.ScopeType()),
		}, origin, now)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *templateUseCaseImpl) ActivateTemplate(ctx context.Context, id uuid.UUID, origin audit.Origin) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tmpl, err := tx.Reads().TemplateByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return contract.ErrTemplateNotFound
			}
			return err
		}
		if err := tx.Templates().Activate(ctx, id, tmpl.ScopeType, tmpl.ScopeID); err != nil {
			return err
		}
		return recordAdminEvent(ctx, tx, audit.ActionTemplateActivated, audit.EntityTemplate, &id, map[string]any{
			"name":       tmpl.Name,
			"version":    tmpl.Version,
			"scope_type": string(tmpl.ScopeType),
		}, origin, uc.clock.Now())
	})
}

func ensureScope(ctx context.Context, tx shared.Tx, scopeType contract.ScopeType, scopeID *uuid.UUID) error {
	if scopeID == nil {
		return nil
	}
	var err error
	switch scopeType {
	case contract.ScopeCompany:
		if _, err = tx.Reads().CompanyByID(ctx, *scopeID); infra.IsKind(err, infra.KindNotFound) {
			return catalog.ErrCompanyNotFound
		}
	case contract.ScopeLocation:
		if _, err = tx.Reads().LocationByID(ctx, *scopeID); infra.IsKind(err, infra.KindNotFound) {
			return catalog.ErrLocationNotFound
		}
	}
	return err
}
