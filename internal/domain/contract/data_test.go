//go:build unit

package contract_test

import (
	"testing"
	"time"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/contract"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestBuildData(t *testing.T) {
	prorata := decimal.RequireFromString("55")
	in := contract.RenderInput{
		Company:         &contract.CompanyInfo{Name: "Stellplatz Nord GmbH"},
		Customer:        contract.CustomerInfo{FirstName: "Erika", LastName: "Mustermann", Address: "Hauptstraße 1, 12345 Berlin", Email: "erika@example.com"},
		LocationAddress: "Hafenweg 3, 20457 Hamburg",
		Category:        catalog.CategoryIndoor,
		VehicleLabel:    "bis 6,00 m",
		VehicleLength:   decimal.RequireFromString("6.0"),
		StartDate:       time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Monthly:         decimal.RequireFromString("110"),
		ProRata:         &prorata,
		DiscountCode:    strPtr("TEN"),
		DiscountAmount:  decimal.Zero,
		Caution:         decimal.RequireFromString("220"),
		ContractDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	data := contract.BuildData(in)

	assert.Equal(t, "110.00", data["net_price"])
	assert.Equal(t, "20.90", data["vat_amount"])
	assert.Equal(t, "130.90", data["gross_price"])
	assert.Equal(t, "65.45", data["prorata_amount"])
	assert.Nil(t, data["discount_code"], "no code shown without an amount")
	assert.Nil(t, data["discount_amount"])
	assert.Nil(t, data["access_code"])
	assert.Equal(t, "16.06.2024", data["start_date"])
	assert.Equal(t, "Halle", data["category_label"])
	assert.Equal(t, "stellplatz-nord-gmbh", data["company_email"])
	assert.Equal(t, "(Nicht unterschrieben)", data["owner_signature"])

	body := "{{#if access_code}}Code: {{access_code}}{{/if}}{{#unless access_code}}Code folgt{{/unless}}"
	assert.Equal(t, "Code folgt", contract.Render(body, data))

	in.AccessCode = strPtr("4711")
	assert.Equal(t, "Code: 4711", contract.Render(body, contract.BuildData(in)))
}
