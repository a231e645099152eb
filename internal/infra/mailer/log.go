package mailer

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/usecase/shared"
)

// LogMailer only logs outgoing mail; used when no provider is configured.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg shared.EmailMessage) error {
	attachment := ""
	if msg.Attachment != nil {
		attachment = msg.Attachment.Filename
	}
	m.logger.Info("email not sent, no mail provider configured",
		"booking_id", msg.BookingID,
		"to", msg.To,
		"subject", msg.Subject,
		"attachment", attachment)
	return nil
}
