package shared

import (
	"strings"

	"parkspace-booking/internal/pkg/config"

	"github.com/google/uuid"
)

const NotificationKindEmail = "email"

const (
	TopicBookingConfirmation = "booking_confirmation"
	TopicBookingAdminNotice  = "booking_admin_notice"
	TopicContractCompleted   = "contract_completed"
)

type NotifySettings struct {
	// AdminEmail receives booking notices for locations whose company has no email.
	AdminEmail string
	// PublicBaseURL prefixes the links handed out in invites.
	PublicBaseURL string
}

func NewNotifySettings(cfg config.Config) NotifySettings {
	return NotifySettings{
		AdminEmail:    cfg.Admin.NotifyEmail,
		PublicBaseURL: strings.TrimRight(cfg.Server.PublicBaseURL, "/"),
	}
}

// EmailMessage is the outbox payload of an email job; it is rendered when the job is enqueued.
type EmailMessage struct {
	BookingID  uuid.UUID        `json:"booking_id"`
	To         string           `json:"to"`
	ToName     string           `json:"to_name,omitempty"`
	Subject    string           `json:"subject"`
	Body       string           `json:"body"`
	Attachment *EmailAttachment `json:"attachment,omitempty"`
}

type EmailAttachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	// Content is plain text; providers that need base64 encode it on send.
	Content string `json:"content"`
}
