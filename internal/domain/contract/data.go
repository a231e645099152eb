package contract

import (
	"regexp"
	"strings"
	"time"

	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/money"
	"parkspace-booking/internal/pkg/caldate"

	"github.com/shopspring/decimal"
)

const unsigned = "(Nicht unterschrieben)"

type CompanyInfo struct {
	Name        string
	Street      *string
	HouseNumber *string
	PostalCode  *string
	City        *string
	Email       *string
}

type CustomerInfo struct {
	FirstName string
	LastName  string
	Address   string
	Email     string
}

// RenderInput is the frozen booking snapshot a contract is rendered from.
type RenderInput struct {
	Company           *CompanyInfo
	Customer          CustomerInfo
	LocationAddress   string
	Category          catalog.Category
	VehicleLabel      string
	VehicleLength     decimal.Decimal
	AccessCode        *string
	StartDate         time.Time
	EndDate           time.Time
	Monthly           decimal.Decimal
	ProRata           *decimal.Decimal
	DiscountCode      *string
	DiscountAmount    decimal.Decimal
	Caution           decimal.Decimal
	ContractDate      time.Time
	CustomerSignature *string
	OwnerSignature    *string
}

var whitespace = regexp.MustCompile(`\s+`)

// BuildData produces the placeholder map. Monthly is the net rent; pro-rata is shown gross.
func BuildData(in RenderInput) Data {
	vat := billing.VAT(in.Monthly)
	data := Data{
		"customer_first_name":  in.Customer.FirstName,
		"customer_last_name":   in.Customer.LastName,
		"customer_address":     in.Customer.Address,
		"customer_email":       in.Customer.Email,
		"location_address":     in.LocationAddress,
		"category_label":       in.Category.Label(),
		"vehicle_label":        in.VehicleLabel,
		"vehicle_length":       in.VehicleLength.String(),
		"access_code":          nil,
		"start_date":           caldate.FormatGerman(in.StartDate),
		"end_date":             caldate.FormatGerman(in.EndDate),
		"net_price":            money.Format(in.Monthly),
		"vat_amount":           money.Format(vat),
		"gross_price":          money.Format(in.Monthly.Add(vat)),
		"prorata_amount":       nil,
		"discount_code":        nil,
		"discount_amount":      nil,
		"caution":              money.Format(in.Caution),
		"contract_date":        caldate.FormatGerman(in.ContractDate),
		"customer_signature":   signatureOrPlaceholder(in.CustomerSignature),
		"owner_signature":      signatureOrPlaceholder(in.OwnerSignature),
		"company_name":         nil,
		"company_street":       nil,
		"company_house_number": nil,
		"company_postal_code":  nil,
		"company_city":         nil,
		"company_email":        nil,
	}

	if in.AccessCode != nil && *in.AccessCode != "" {
		data["access_code"] = *in.AccessCode
	}
	if in.ProRata != nil && !in.ProRata.IsZero() {
		data["prorata_amount"] = money.Format(billing.Gross(*in.ProRata))
	}
	if in.DiscountAmount.IsPositive() {
		data["discount_amount"] = money.Format(in.DiscountAmount)
		if in.DiscountCode != nil {
			data["discount_code"] = *in.DiscountCode
		}
	}

	if c := in.Company; c != nil {
		data["company_name"] = c.Name
		data["company_street"] = c.Street
		data["company_house_number"] = c.HouseNumber
		data["company_postal_code"] = c.PostalCode
		data["company_city"] = c.City
		if c.Email != nil && *c.Email != "" {
			data["company_email"] = *c.Email
		} else {
			data["company_email"] = whitespace.ReplaceAllString(strings.ToLower(c.Name), "-")
		}
	}
	return data
}

func signatureOrPlaceholder(svg *string) string {
	if svg == nil || *svg == "" {
		return unsigned
	}
	return *svg
}
