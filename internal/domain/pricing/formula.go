package pricing

import (
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	DefaultBasePrice   = decimal.NewFromInt(100)
	SurchargeThreshold = decimal.RequireFromString("5.0")
	SurchargeStep      = decimal.RequireFromString("0.5")
	SurchargePerStep   = decimal.NewFromInt(10)
)

// LengthSurcharge adds SurchargePerStep for every started SurchargeStep beyond the threshold.
func LengthSurcharge(maxLength decimal.Decimal) decimal.Decimal {
	if !maxLength.GreaterThan(SurchargeThreshold) {
		return decimal.Zero
	}
	steps := maxLength.Sub(SurchargeThreshold).Div(SurchargeStep).Ceil()
	return steps.Mul(SurchargePerStep)
}

func FormulaPrice(basePrice, maxLength decimal.Decimal, category catalog.Category) decimal.Decimal {
	return money.Round(basePrice.Add(LengthSurcharge(maxLength)).Mul(category.Factor()))
}
