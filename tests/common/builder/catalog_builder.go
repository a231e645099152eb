//go:build unit || e2e

package builder

import (
	"parkspace-booking/internal/domain/catalog"
	reqdto "parkspace-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type CompanyBuilder struct {
	Name        string
	Street      string
	HouseNumber string
	PostalCode  string
	City        string
	Email       string
}

func NewCompanyBuilder() *CompanyBuilder {
	return &CompanyBuilder{
		Name:        "Stellplatz Nord GmbH",
		Street:      "Hafenstraße",
		HouseNumber: "12",
		PostalCode:  "20457",
		City:        "Hamburg",
		Email:       "info@stellplatz-nord.de",
	}
}

func (b *CompanyBuilder) With(mutate func(*CompanyBuilder)) *CompanyBuilder {
	mutate(b)
	return b
}

func (b *CompanyBuilder) BuildCreateRequest() reqdto.CreateCompanyRequest {
	return reqdto.CreateCompanyRequest{
		Name:        b.Name,
		Street:      &b.Street,
		HouseNumber: &b.HouseNumber,
		PostalCode:  &b.PostalCode,
		City:        &b.City,
		Email:       &b.Email,
	}
}

type LocationBuilder struct {
	Name       string
	Address    string
	Category   catalog.Category
	CompanyID  *uuid.UUID
	AccessCode *string
}

func NewLocationBuilder() *LocationBuilder {
	return &LocationBuilder{
		Name:     "Halle Nord",
		Address:  "Industriestraße 5, 12345 Berlin",
		Category: catalog.CategoryIndoor,
	}
}

func (b *LocationBuilder) With(mutate func(*LocationBuilder)) *LocationBuilder {
	mutate(b)
	return b
}

func (b *LocationBuilder) WithCompany(id uuid.UUID) *LocationBuilder {
	b.CompanyID = &id
	return b
}

func (b *LocationBuilder) BuildCreateRequest() reqdto.CreateLocationRequest {
	return reqdto.CreateLocationRequest{
		Name:       b.Name,
		Address:    b.Address,
		Category:   string(b.Category),
		CompanyID:  b.CompanyID,
		AccessCode: b.AccessCode,
	}
}
