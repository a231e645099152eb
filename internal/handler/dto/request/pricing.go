package request

import (
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRuleRequest struct {
	LocationID    uuid.UUID        `json:"location_id" binding:"required"`
	VehicleTypeID uuid.UUID        `json:"vehicle_type_id" binding:"required"`
	Category      string           `json:"category" binding:"required,category"`
	BasePrice     *decimal.Decimal `json:"base_price" binding:"required"`
	ValidFrom     *string          `json:"valid_from" binding:"omitempty,caldate"`
	ValidTo       *string          `json:"valid_to" binding:"omitempty,caldate"`
	Priority      int              `json:"priority" binding:"omitempty,min=0,max=1000"`
}

func (r *CreateRuleRequest) ToInput() (commands.RuleInput, error) {
	from, err := optionalDate(r.ValidFrom)
	if err != nil {
		return commands.RuleInput{}, err
	}
	to, err := optionalDate(r.ValidTo)
	if err != nil {
		return commands.RuleInput{}, err
	}
	return commands.RuleInput{
		LocationID:    r.LocationID,
		VehicleTypeID: r.VehicleTypeID,
		Category:      catalog.Category(r.Category),
		BasePrice:     *r.BasePrice,
		ValidFrom:     from,
		ValidTo:       to,
		Priority:      r.Priority,
	}, nil
}

type CreateOverrideRequest struct {
	LocationID    uuid.UUID        `json:"location_id" binding:"required"`
	VehicleTypeID uuid.UUID        `json:"vehicle_type_id" binding:"required"`
	Category      string           `json:"category" binding:"required,category"`
	OverridePrice *decimal.Decimal `json:"override_price" binding:"required"`
	ValidFrom     string           `json:"valid_from" binding:"required,caldate"`
	ValidTo       string           `json:"valid_to" binding:"required,caldate"`
	Reason        *string          `json:"reason" binding:"omitempty,max=500"`
}

func (r *CreateOverrideRequest) ToInput() (commands.OverrideInput, error) {
	from, err := caldate.Parse(r.ValidFrom)
	if err != nil {
		return commands.OverrideInput{}, err
	}
	to, err := caldate.Parse(r.ValidTo)
	if err != nil {
		return commands.OverrideInput{}, err
	}
	return commands.OverrideInput{
		LocationID:    r.LocationID,
		VehicleTypeID: r.VehicleTypeID,
		Category:      catalog.Category(r.Category),
		Price:         *r.OverridePrice,
		ValidFrom:     &from,
		ValidTo:       &to,
		Reason:        trimmedOrNil(r.Reason),
	}, nil
}

type BasePriceRequest struct {
	BasePrice *decimal.Decimal `json:"base_price" binding:"required"`
}
