package bootstrap

import (
	"time"

	"parkspace-booking/internal/pkg/config"
	"parkspace-booking/internal/pkg/jwt"
	"parkspace-booking/internal/pkg/password"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewAdminVerifier,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}
	return jwt.NewService(cfg.JWT.Secret, duration)
}

func NewAdminVerifier(cfg config.Config) *password.Verifier {
	return password.NewVerifier(cfg.Admin.TokenHash)
}
