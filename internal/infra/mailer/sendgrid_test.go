//go:build unit

package mailer

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"testing"

	"parkspace-booking/internal/pkg/config"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSendClient struct {
	sent     []*mail.SGMailV3
	response *rest.Response
	err      error
}

func (f *fakeSendClient) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, email)
	return f.response, f.err
}

func newTestMailer(client sendClient) *SendGridMailer {
	return &SendGridMailer{
		client:    client,
		fromEmail: "noreply@example.com",
		fromName:  "Stellplatzvermietung",
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSendGridMailer_Send(t *testing.T) {
	msg := shared.EmailMessage{
		BookingID: uuid.New(),
		To:        "erika@example.com",
		ToName:    "Erika Mustermann",
		Subject:   "Vertrag abgeschlossen",
		Body:      "Hallo Erika",
		Attachment: &shared.EmailAttachment{
			Filename:    "vertrag.md",
			ContentType: "text/markdown",
			Content:     "# Mietvertrag",
		},
	}

	t.Run("success: builds the message with a base64 attachment", func(t *testing.T) {
		client := &fakeSendClient{response: &rest.Response{StatusCode: 202}}

		err := newTestMailer(client).Send(context.Background(), msg)

		require.NoError(t, err)
		require.Len(t, client.sent, 1)
		sent := client.sent[0]
		assert.Equal(t, "noreply@example.com", sent.From.Address)
		assert.Equal(t, "Vertrag abgeschlossen", sent.Subject)
		require.Len(t, sent.Personalizations, 1)
		assert.Equal(t, "erika@example.com", sent.Personalizations[0].To[0].Address)
		require.Len(t, sent.Attachments, 1)
		decoded, err := base64.StdEncoding.DecodeString(sent.Attachments[0].Content)
		require.NoError(t, err)
		assert.Equal(t, "# Mietvertrag", string(decoded))
	})

	t.Run("error: non-2xx status is a rejected delivery", func(t *testing.T) {
		client := &fakeSendClient{response: &rest.Response{StatusCode: 400, Body: "bad request"}}

		err := newTestMailer(client).Send(context.Background(), msg)

		assert.True(t, errs.Is(err, ErrDeliveryRejected), "got %v", err)
	})

	t.Run("error: transport failure is wrapped", func(t *testing.T) {
		client := &fakeSendClient{err: errors.New("dial tcp: timeout")}

		err := newTestMailer(client).Send(context.Background(), msg)

		assert.ErrorContains(t, err, "failed to send email via SendGrid")
	})
}

func TestNew_FallsBackToLogMailer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, isLog := New(config.MailConfig{}, logger).(*LogMailer)
	assert.True(t, isLog)

	_, isSendGrid := New(config.MailConfig{SendGridAPIKey: "SG.test"}, logger).(*SendGridMailer)
	assert.True(t, isSendGrid)
}
