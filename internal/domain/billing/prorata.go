package billing

import (
	"time"

	"parkspace-booking/internal/domain/money"
	"parkspace-booking/internal/pkg/caldate"

	"github.com/shopspring/decimal"
)

// ProRata returns the partial first-month rent, or nil when the booking starts on the 1st.
func ProRata(monthly decimal.Decimal, start time.Time) *decimal.Decimal {
	day := start.Day()
	if day == 1 {
		return nil
	}
	dim := int64(caldate.DaysInMonth(start))
	remaining := dim - int64(day) + 1
	amount := money.Round(monthly.Div(decimal.NewFromInt(dim)).Mul(decimal.NewFromInt(remaining)))
	return &amount
}
