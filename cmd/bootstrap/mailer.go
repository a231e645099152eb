package bootstrap

import (
	"log/slog"

	"parkspace-booking/internal/infra/mailer"
	"parkspace-booking/internal/pkg/config"
	"parkspace-booking/internal/usecase/jobs"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config, logger *slog.Logger) jobs.Mailer {
	return mailer.New(cfg.Mail, logger)
}
