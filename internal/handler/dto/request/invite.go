package request

import (
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/invite"

	"github.com/google/uuid"
)

type CreateInviteRequest struct {
	LocationID     *uuid.UUID `json:"location_id"`
	VehicleTypeID  *uuid.UUID `json:"vehicle_type_id"`
	Category       *string    `json:"category" binding:"omitempty,category"`
	PrefillEmail   *string    `json:"prefill_email" binding:"omitempty,email"`
	ExpiresInHours int        `json:"expires_in_hours" binding:"omitempty,min=1,max=8760"`
}

func (r *CreateInviteRequest) ToParams() invite.Params {
	params := invite.Params{
		LocationID:     r.LocationID,
		VehicleTypeID:  r.VehicleTypeID,
		PrefillEmail:   trimmedOrNil(r.PrefillEmail),
		ExpiresInHours: r.ExpiresInHours,
	}
	if r.Category != nil {
		c := catalog.Category(*r.Category)
		params.Category = &c
	}
	return params
}
