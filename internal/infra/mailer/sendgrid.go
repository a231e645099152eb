package mailer

import (
	"context"
	"encoding/base64"
	"log/slog"

	"parkspace-booking/internal/pkg/config"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/usecase/jobs"
	"parkspace-booking/internal/usecase/shared"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrDeliveryRejected = errs.New("mail provider rejected the message")

// sendClient is the part of *sendgrid.Client the mailer uses.
type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridMailer struct {
	client    sendClient
	fromEmail string
	fromName  string
	logger    *slog.Logger
}

func NewSendGridMailer(cfg config.MailConfig, logger *slog.Logger) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

// New picks SendGrid when an API key is configured and falls back to logging otherwise.
func New(cfg config.MailConfig, logger *slog.Logger) jobs.Mailer {
	if cfg.SendGridAPIKey == "" {
		logger.Warn("SENDGRID_API_KEY not set, emails will only be logged")
		return NewLogMailer(logger)
	}
	return NewSendGridMailer(cfg, logger)
}

func (m *SendGridMailer) Send(ctx context.Context, msg shared.EmailMessage) error {
	message := buildMessage(mail.NewEmail(m.fromName, m.fromEmail), msg)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "failed to send email via SendGrid")
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		m.logger.Warn("sendgrid rejected email",
			"booking_id", msg.BookingID,
			"status", response.StatusCode,
			"body", response.Body)
		return errs.Wrapf(ErrDeliveryRejected, "status %d", response.StatusCode)
	}

	m.logger.Info("email sent", "booking_id", msg.BookingID, "subject", msg.Subject, "status", response.StatusCode)
	return nil
}

func buildMessage(from *mail.Email, msg shared.EmailMessage) *mail.SGMailV3 {
	message := mail.NewV3Mail()
	message.SetFrom(from)
	message.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(msg.ToName, msg.To))
	message.AddPersonalizations(p)
	message.AddContent(mail.NewContent("text/plain", msg.Body))

	if msg.Attachment != nil {
		a := mail.NewAttachment()
		a.SetFilename(msg.Attachment.Filename)
		a.SetType(msg.Attachment.ContentType)
		a.SetContent(base64.StdEncoding.EncodeToString([]byte(msg.Attachment.Content)))
		a.SetDisposition("attachment")
		message.AddAttachment(a)
	}
	return message
}
