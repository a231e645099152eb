package response

import (
	"time"

	"parkspace-booking/internal/usecase/commands"
)

type InviteResponse struct {
	Token     string    `json:"token"`
	InviteURL string    `json:"invite_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewInviteResponse(r *commands.InviteResult) InviteResponse {
	return InviteResponse{
		Token:     r.Token,
		InviteURL: r.InviteURL,
		ExpiresAt: r.ExpiresAt,
	}
}
