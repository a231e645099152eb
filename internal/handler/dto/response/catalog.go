package response

import (
	"parkspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// PublicLocation omits the access code, which is only revealed in the signed contract.
type PublicLocation struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Category    string     `json:"category"`
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	CompanyName *string    `json:"company_name,omitempty"`
}

type PublicVehicleType struct {
	ID        uuid.UUID       `json:"id"`
	Label     string          `json:"label"`
	MaxLength decimal.Decimal `json:"max_length"`
}

func NewPublicLocations(views []*queries.LocationView) ([]PublicLocation, error) {
	out := make([]PublicLocation, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}

func NewPublicLocation(view *queries.LocationView) (*PublicLocation, error) {
	var out PublicLocation
	if err := copier.Copy(&out, view); err != nil {
		return nil, err
	}
	return &out, nil
}

func NewPublicVehicleTypes(views []*queries.VehicleTypeView) ([]PublicVehicleType, error) {
	out := make([]PublicVehicleType, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}
