// Package money holds the rounding rules shared by pricing and billing.
// All amounts are EUR with two decimal places.
package money

import "github.com/shopspring/decimal"

const Places = 2

var (
	Hundred = decimal.NewFromInt(100)
	// VATRate is fixed by law for these contracts and not configurable per booking.
	VATRate = decimal.RequireFromString("0.19")
)

// Round rounds half away from zero to cents.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// NonNegative clamps at zero and rounds.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return Round(d)
}

func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}
