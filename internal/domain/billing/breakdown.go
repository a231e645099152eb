package billing

import (
	"time"

	"parkspace-booking/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BreakdownInput struct {
	Monthly           decimal.Decimal
	StartDate         time.Time
	LocationID        uuid.UUID
	DiscountCode      string
	Discount          *Discount
	DepositMultiplier decimal.Decimal
}

type Breakdown struct {
	Monthly           decimal.Decimal
	ProRata           *decimal.Decimal
	DiscountID        *uuid.UUID
	DiscountCode      *string
	DiscountAmount    decimal.Decimal
	DepositMultiplier decimal.Decimal
	Deposit           decimal.Decimal
	Total             decimal.Decimal
	// DiscountRejected is set when a code was supplied but could not be applied.
	DiscountRejected bool
}

// Compute freezes the billing snapshot of a booking. A missing or unusable discount
// does not fail the computation; it is reported through DiscountRejected.
func Compute(in BreakdownInput) Breakdown {
	b := Breakdown{
		Monthly:           in.Monthly,
		ProRata:           ProRata(in.Monthly, in.StartDate),
		DiscountAmount:    decimal.Zero,
		DepositMultiplier: in.DepositMultiplier,
		Deposit:           Deposit(in.Monthly, in.DepositMultiplier),
	}

	if code := NormalizeCode(in.DiscountCode); code != "" {
		if in.Discount == nil || in.Discount.Evaluate(in.StartDate, in.LocationID) != nil {
			b.DiscountRejected = true
		} else {
			id := in.Discount.ID()
			dc := in.Discount.Code()
			b.DiscountID = &id
			b.DiscountCode = &dc
			b.DiscountAmount = in.Discount.Apply(in.Monthly)
		}
	}

	b.Total = Total(in.Monthly, b.ProRata, b.DiscountAmount, b.Deposit)
	return b
}

func Total(monthly decimal.Decimal, prorata *decimal.Decimal, discount, deposit decimal.Decimal) decimal.Decimal {
	first := monthly
	if prorata != nil {
		first = *prorata
	}
	return money.NonNegative(first.Sub(discount).Add(deposit))
}
