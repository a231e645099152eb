package commands

import (
	"context"
	"log/slog"
	"time"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/pkg/jwt"
	"parkspace-booking/internal/pkg/password"
	"parkspace-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.NewKind("invalid credentials", errs.ErrUnauthorized)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, adminToken string, origin audit.Origin) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	verifier   *password.Verifier
	jwtService *jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, verifier *password.Verifier, jwtService *jwt.Service, clock clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		verifier:   verifier,
		jwtService: jwtService,
		clock:      clock,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, adminToken string, origin audit.Origin) (*LoginResult, error) {
	if err := a.verifier.Verify(adminToken); err != nil {
		a.logger.Warn("admin login rejected", "client_ip", origin.IP)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAdminToken()
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return recordAdminEvent(ctx, tx, audit.ActionAdminLogin, audit.EntitySession, nil, nil, origin, a.clock.Now())
	})
	if err != nil {
		// login succeeded; a missing audit row is not a reason to refuse it
		a.logger.Warn("failed to record admin login", "error", err.Error())
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
