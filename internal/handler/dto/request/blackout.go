package request

import (
	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBlackoutRequest struct {
	LocationID uuid.UUID `json:"location_id" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required,caldate"`
	EndDate    string    `json:"end_date" binding:"required,caldate"`
	Reason     *string   `json:"reason" binding:"omitempty,max=500"`
}

func (r *CreateBlackoutRequest) ToInput() (commands.BlackoutInput, error) {
	start, err := caldate.Parse(r.StartDate)
	if err != nil {
		return commands.BlackoutInput{}, err
	}
	end, err := caldate.Parse(r.EndDate)
	if err != nil {
		return commands.BlackoutInput{}, err
	}
	return commands.BlackoutInput{
		LocationID: r.LocationID,
		StartDate:  start,
		EndDate:    end,
		Reason:     trimmedOrNil(r.Reason),
	}, nil
}
