package billing

import (
	"parkspace-booking/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	DefaultDepositMultiplier = decimal.NewFromInt(2)
	MaxDepositMultiplier     = decimal.NewFromInt(10)
	vatFactor                = decimal.NewFromInt(1).Add(money.VATRate)
)

func ValidateDepositMultiplier(m decimal.Decimal) error {
	if m.IsNegative() || m.GreaterThan(MaxDepositMultiplier) {
		return ErrInvalidDepositMultiplier
	}
	return nil
}

func Deposit(monthly, multiplier decimal.Decimal) decimal.Decimal {
	return money.Round(monthly.Mul(multiplier))
}

func VAT(net decimal.Decimal) decimal.Decimal {
	return money.Round(net.Mul(money.VATRate))
}

func Gross(net decimal.Decimal) decimal.Decimal {
	return net.Add(VAT(net))
}

func Net(gross decimal.Decimal) decimal.Decimal {
	return money.Round(gross.Div(vatFactor))
}
