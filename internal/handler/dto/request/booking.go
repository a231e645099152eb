package request

import (
	"strings"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type CreateBookingRequest struct {
	LocationID        uuid.UUID        `json:"location_id" binding:"required"`
	VehicleTypeID     uuid.UUID        `json:"vehicle_type_id" binding:"required"`
	Category          string           `json:"category" binding:"required,category"`
	FirstName         string           `json:"first_name" binding:"required,min=2,max=100"`
	LastName          string           `json:"last_name" binding:"required,min=2,max=100"`
	Address           string           `json:"address" binding:"required,min=5,max=500"`
	Email             string           `json:"email" binding:"required,email"`
	StartDate         string           `json:"start_date" binding:"required,caldate"`
	EndDate           string           `json:"end_date" binding:"required,caldate"`
	SignatureImage    string           `json:"customer_signature_image"`
	SignatureSVG      string           `json:"customer_signature_svg" binding:"required"`
	DiscountCode      *string          `json:"discount_code" binding:"omitempty,max=50"`
	DepositMultiplier *decimal.Decimal `json:"deposit_multiplier"`
	BillingCycle      *string          `json:"billing_cycle" binding:"omitempty,oneof=monthly quarterly annual"`
	NoticePeriodDays  *int             `json:"notice_period_days" binding:"omitempty,min=0,max=365"`
	InviteToken       *string          `json:"invite_token" binding:"omitempty,max=128"`
	IdempotencyKey    *string          `json:"idempotency_key" binding:"omitempty,max=255"`
}

// ToInput prefers the Idempotency-Key header over the body field.
func (r *CreateBookingRequest) ToInput(headerKey string, origin audit.Origin) (commands.CreateBookingInput, error) {
	start, err := caldate.Parse(r.StartDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	end, err := caldate.Parse(r.EndDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	in := commands.CreateBookingInput{
		LocationID:    r.LocationID,
		VehicleTypeID: r.VehicleTypeID,
		Category:      catalog.Category(r.Category),
		Customer: booking.Customer{
			FirstName: strings.TrimSpace(r.FirstName),
			LastName:  strings.TrimSpace(r.LastName),
			Address:   strings.TrimSpace(r.Address),
			Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		},
		StartDate:         start,
		EndDate:           end,
		DepositMultiplier: r.DepositMultiplier,
		NoticePeriodDays:  r.NoticePeriodDays,
		SignatureImage:    r.SignatureImage,
		SignatureSVG:      r.SignatureSVG,
		InviteToken:       trimmedOrNil(r.InviteToken),
		IdempotencyKey:    trimmedOrNil(r.IdempotencyKey),
		Origin:            origin,
	}
	if r.DiscountCode != nil {
		in.DiscountCode = strings.TrimSpace(*r.DiscountCode)
	}
	if r.BillingCycle != nil {
		in.BillingCycle = *r.BillingCycle
	}
	if key := strings.TrimSpace(headerKey); key != "" {
		in.IdempotencyKey = &key
	}
	return in, nil
}

type SignRequest struct {
	SignatureImage string `json:"signature_image"`
	SignatureSVG   string `json:"signature_svg" binding:"required"`
}

func (r *SignRequest) ToInput(bookingID uuid.UUID, origin audit.Origin) commands.SignInput {
	return commands.SignInput{
		BookingID:      bookingID,
		SignatureImage: r.SignatureImage,
		SignatureSVG:   r.SignatureSVG,
		Origin:         origin,
	}
}

type BookingFilterQuery struct {
	Status     *string `form:"status" binding:"omitempty,oneof=pending_customer_signature pending_owner_signature completed"`
	LocationID *string `form:"location_id" binding:"omitempty,uuid"`
	From       *string `form:"from" binding:"omitempty,caldate"`
	To         *string `form:"to" binding:"omitempty,caldate"`
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
