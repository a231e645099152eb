package request

import (
	"strings"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateCompanyRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Street      *string `json:"street" binding:"omitempty,max=200"`
	HouseNumber *string `json:"house_number" binding:"omitempty,max=20"`
	PostalCode  *string `json:"postal_code" binding:"omitempty,max=20"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
}

func (r *CreateCompanyRequest) ToInput() commands.CompanyInput {
	return commands.CompanyInput{
		Name:        strings.TrimSpace(r.Name),
		Street:      trimmedOrNil(r.Street),
		HouseNumber: trimmedOrNil(r.HouseNumber),
		PostalCode:  trimmedOrNil(r.PostalCode),
		City:        trimmedOrNil(r.City),
		Email:       trimmedOrNil(r.Email),
		Phone:       trimmedOrNil(r.Phone),
	}
}

// UpdateCompanyRequest keeps absent fields; an empty string clears an optional one.
type UpdateCompanyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=200"`
	Street      *string `json:"street" binding:"omitempty,max=200"`
	HouseNumber *string `json:"house_number" binding:"omitempty,max=20"`
	PostalCode  *string `json:"postal_code" binding:"omitempty,max=20"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
}

func (r *UpdateCompanyRequest) ToUpdate() commands.CompanyUpdate {
	return commands.CompanyUpdate{
		Name:        trimmed(r.Name),
		Street:      trimmed(r.Street),
		HouseNumber: trimmed(r.HouseNumber),
		PostalCode:  trimmed(r.PostalCode),
		City:        trimmed(r.City),
		Email:       trimmed(r.Email),
		Phone:       trimmed(r.Phone),
	}
}

type CreateLocationRequest struct {
	Name       string     `json:"name" binding:"required,min=2,max=200"`
	Address    string     `json:"address" binding:"required,min=5,max=500"`
	Category   string     `json:"category" binding:"required,category"`
	CompanyID  *uuid.UUID `json:"company_id"`
	AccessCode *string    `json:"access_code" binding:"omitempty,max=50"`
}

func (r *CreateLocationRequest) ToInput() commands.LocationInput {
	return commands.LocationInput{
		Name:       strings.TrimSpace(r.Name),
		Address:    strings.TrimSpace(r.Address),
		Category:   catalog.Category(r.Category),
		CompanyID:  r.CompanyID,
		AccessCode: trimmedOrNil(r.AccessCode),
	}
}

// UpdateLocationRequest detaches the company when company_id is the nil UUID.
type UpdateLocationRequest struct {
	Name       *string    `json:"name" binding:"omitempty,min=2,max=200"`
	Address    *string    `json:"address" binding:"omitempty,min=5,max=500"`
	Category   *string    `json:"category" binding:"omitempty,category"`
	CompanyID  *uuid.UUID `json:"company_id"`
	AccessCode *string    `json:"access_code" binding:"omitempty,max=50"`
}

func (r *UpdateLocationRequest) ToUpdate() commands.LocationUpdate {
	update := commands.LocationUpdate{
		Name:       trimmed(r.Name),
		Address:    trimmed(r.Address),
		CompanyID:  r.CompanyID,
		AccessCode: trimmed(r.AccessCode),
	}
	if r.Category != nil {
		c := catalog.Category(*r.Category)
		update.Category = &c
	}
	return update
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
