package response

import (
	"parkspace-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	BookingID        uuid.UUID `json:"booking_id"`
	Replayed         bool      `json:"replayed"`
	DiscountRejected bool      `json:"discount_rejected"`
}

func NewCreateBookingResponse(r *commands.CreateBookingResult) CreateBookingResponse {
	return CreateBookingResponse{
		BookingID:        r.BookingID,
		Replayed:         r.Replayed,
		DiscountRejected: r.DiscountRejected,
	}
}

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

type TemplateCreatedResponse struct {
	ID      uuid.UUID `json:"id"`
	Version int       `json:"version"`
}

type ToggleResponse struct {
	ID       uuid.UUID `json:"id"`
	IsActive bool      `json:"is_active"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
