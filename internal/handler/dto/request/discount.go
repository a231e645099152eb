package request

import (
	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDiscountRequest struct {
	Code         string           `json:"code" binding:"required,alnum_code"`
	DiscountType string           `json:"discount_type" binding:"required,oneof=percent amount"`
	Value        *decimal.Decimal `json:"value" binding:"required"`
	ValidFrom    *string          `json:"valid_from" binding:"omitempty,caldate"`
	ValidTo      *string          `json:"valid_to" binding:"omitempty,caldate"`
	LocationID   *uuid.UUID       `json:"location_id"`
	UsageLimit   *int             `json:"usage_limit" binding:"omitempty,min=1"`
}

func (r *CreateDiscountRequest) ToInput() (commands.DiscountInput, error) {
	from, err := optionalDate(r.ValidFrom)
	if err != nil {
		return commands.DiscountInput{}, err
	}
	to, err := optionalDate(r.ValidTo)
	if err != nil {
		return commands.DiscountInput{}, err
	}
	return commands.DiscountInput{
		Code:       billing.NormalizeCode(r.Code),
		Type:       billing.DiscountType(r.DiscountType),
		Value:      *r.Value,
		ValidFrom:  from,
		ValidTo:    to,
		LocationID: r.LocationID,
		UsageLimit: r.UsageLimit,
	}, nil
}
