//go:build unit

package billing_test

import (
	"testing"
	"time"

	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(i int) *int { return &i }

func TestProRata(t *testing.T) {
	t.Run("first of month has no pro-rata", func(t *testing.T) {
		assert.Nil(t, billing.ProRata(d("110"), day("2024-06-01")))
	})

	t.Run("mid month", func(t *testing.T) {
		// June has 30 days; 16th leaves 15 days
		got := billing.ProRata(d("110"), day("2024-06-16"))
		require.NotNil(t, got)
		assert.Equal(t, "55.00", got.StringFixed(2))
	})

	t.Run("leap february", func(t *testing.T) {
		got := billing.ProRata(d("100"), day("2024-02-29"))
		require.NotNil(t, got)
		assert.Equal(t, "3.45", got.StringFixed(2))
	})

	t.Run("strictly below monthly and linear in remaining days", func(t *testing.T) {
		monthly := d("93")
		prev := monthly
		for dayOfMonth := 2; dayOfMonth <= 31; dayOfMonth++ {
			start := time.Date(2024, time.January, dayOfMonth, 0, 0, 0, 0, time.UTC)
			got := billing.ProRata(monthly, start)
			require.NotNil(t, got)
			assert.True(t, got.LessThan(monthly), "day %d", dayOfMonth)
			assert.True(t, got.LessThan(prev), "day %d", dayOfMonth)
			prev = *got
		}
		// 93 / 31 = 3 per day
		last := billing.ProRata(monthly, day("2024-01-31"))
		assert.Equal(t, "3.00", last.StringFixed(2))
	})
}

func TestDepositAndVAT(t *testing.T) {
	assert.Equal(t, "220.00", billing.Deposit(d("110"), billing.DefaultDepositMultiplier).StringFixed(2))
	assert.Equal(t, "0.00", billing.Deposit(d("110"), d("0")).StringFixed(2))
	assert.Equal(t, "20.90", billing.VAT(d("110")).StringFixed(2))
	assert.Equal(t, "130.90", billing.Gross(d("110")).StringFixed(2))
	assert.Equal(t, "110.00", billing.Net(d("130.90")).StringFixed(2))

	assert.NoError(t, billing.ValidateDepositMultiplier(d("10")))
	assert.True(t, errs.Is(billing.ValidateDepositMultiplier(d("10.5")), billing.ErrInvalidDepositMultiplier))
	assert.True(t, errs.Is(billing.ValidateDepositMultiplier(d("-1")), billing.ErrInvalidDepositMultiplier))
}

func newDiscount(t *testing.T, p billing.DiscountParams) *billing.Discount {
	t.Helper()
	disc, err := billing.NewDiscount(p, day("2024-01-01"))
	require.NoError(t, err)
	return disc
}

func TestNewDiscount(t *testing.T) {
	cases := []struct {
		name   string
		params billing.DiscountParams
		errIs  error
	}{
		{name: "valid percent", params: billing.DiscountParams{Code: "summer24", Type: billing.DiscountPercent, Value: d("10")}},
		{name: "code too short", params: billing.DiscountParams{Code: "a", Type: billing.DiscountPercent, Value: d("10")}, errIs: billing.ErrInvalidDiscountCode},
		{name: "code with dash", params: billing.DiscountParams{Code: "SUM-24", Type: billing.DiscountPercent, Value: d("10")}, errIs: billing.ErrInvalidDiscountCode},
		{name: "unknown type", params: billing.DiscountParams{Code: "AB", Type: "free", Value: d("10")}, errIs: billing.ErrInvalidDiscountType},
		{name: "zero value", params: billing.DiscountParams{Code: "AB", Type: billing.DiscountAmount, Value: d("0")}, errIs: billing.ErrInvalidDiscountValue},
		{name: "percent over 100", params: billing.DiscountParams{Code: "AB", Type: billing.DiscountPercent, Value: d("101")}, errIs: billing.ErrInvalidDiscountValue},
		{name: "usage limit zero", params: billing.DiscountParams{Code: "AB", Type: billing.DiscountAmount, Value: d("5"), UsageLimit: intPtr(0)}, errIs: billing.ErrInvalidUsageLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			disc, err := billing.NewDiscount(tc.params, day("2024-01-01"))
			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SUMMER24", disc.Code())
			assert.True(t, disc.IsActive())
			assert.Zero(t, disc.UsageCount())
		})
	}
}

func TestDiscountEvaluate(t *testing.T) {
	locationID := uuid.New()
	from, to := day("2024-06-01"), day("2024-06-30")

	t.Run("global discount within window", func(t *testing.T) {
		disc := newDiscount(t, billing.DiscountParams{Code: "JUNE", Type: billing.DiscountPercent, Value: d("10"), ValidFrom: &from, ValidTo: &to})
		assert.NoError(t, disc.Evaluate(day("2024-06-15"), locationID))
		assert.True(t, errs.Is(disc.Evaluate(day("2024-07-01"), locationID), billing.ErrInvalidDiscount))
	})

	t.Run("location scoped", func(t *testing.T) {
		disc := newDiscount(t, billing.DiscountParams{Code: "HERE", Type: billing.DiscountAmount, Value: d("5"), LocationID: &locationID})
		assert.NoError(t, disc.Evaluate(day("2024-06-15"), locationID))
		assert.True(t, errs.Is(disc.Evaluate(day("2024-06-15"), uuid.New()), billing.ErrInvalidDiscount))
	})

	t.Run("inactive", func(t *testing.T) {
		disc := billing.ReconstructDiscount(uuid.New(), "OFF", billing.DiscountAmount, d("5"), pricing.ValidityWindow{}, nil, nil, 0, false, from)
		err := disc.Evaluate(day("2024-06-15"), locationID)
		assert.True(t, errs.Is(err, billing.ErrInvalidDiscount))
		assert.False(t, errs.Is(err, billing.ErrDiscountExhausted))
	})

	t.Run("usage count at limit is never applied", func(t *testing.T) {
		disc := billing.ReconstructDiscount(uuid.New(), "LAST", billing.DiscountAmount, d("5"), pricing.ValidityWindow{}, nil, intPtr(3), 3, true, from)
		err := disc.Evaluate(day("2024-06-15"), locationID)
		assert.True(t, errs.Is(err, billing.ErrDiscountExhausted))
		assert.True(t, errs.Is(err, billing.ErrInvalidDiscount))

		disc = billing.ReconstructDiscount(uuid.New(), "LAST", billing.DiscountAmount, d("5"), pricing.ValidityWindow{}, nil, intPtr(3), 2, true, from)
		assert.NoError(t, disc.Evaluate(day("2024-06-15"), locationID))
	})
}

func TestDiscountApply(t *testing.T) {
	percent := newDiscount(t, billing.DiscountParams{Code: "TEN", Type: billing.DiscountPercent, Value: d("12.5")})
	amount := newDiscount(t, billing.DiscountParams{Code: "FIFTY", Type: billing.DiscountAmount, Value: d("50")})

	assert.Equal(t, "13.75", percent.Apply(d("110")).StringFixed(2))
	assert.Equal(t, "50.00", amount.Apply(d("110")).StringFixed(2))
	assert.Equal(t, "30.00", amount.Apply(d("30")).StringFixed(2))
}

func TestCompute(t *testing.T) {
	locationID := uuid.New()

	t.Run("no discount, first of month", func(t *testing.T) {
		b := billing.Compute(billing.BreakdownInput{
			Monthly:           d("110"),
			StartDate:         day("2024-06-01"),
			LocationID:        locationID,
			DepositMultiplier: billing.DefaultDepositMultiplier,
		})
		assert.Nil(t, b.ProRata)
		assert.Nil(t, b.DiscountCode)
		assert.False(t, b.DiscountRejected)
		assert.Equal(t, "220.00", b.Deposit.StringFixed(2))
		assert.Equal(t, "330.00", b.Total.StringFixed(2))
	})

	t.Run("pro-rata with discount on monthly price", func(t *testing.T) {
		disc := newDiscount(t, billing.DiscountParams{Code: "TEN", Type: billing.DiscountPercent, Value: d("10")})
		b := billing.Compute(billing.BreakdownInput{
			Monthly:           d("110"),
			StartDate:         day("2024-06-16"),
			LocationID:        locationID,
			DiscountCode:      "ten",
			Discount:          disc,
			DepositMultiplier: d("1"),
		})
		require.NotNil(t, b.ProRata)
		require.NotNil(t, b.DiscountCode)
		assert.Equal(t, "TEN", *b.DiscountCode)
		assert.Equal(t, disc.ID(), *b.DiscountID)
		assert.Equal(t, "11.00", b.DiscountAmount.StringFixed(2))
		// 55.00 - 11.00 + 110.00
		assert.Equal(t, "154.00", b.Total.StringFixed(2))
	})

	t.Run("unknown code is soft rejected", func(t *testing.T) {
		b := billing.Compute(billing.BreakdownInput{
			Monthly:           d("110"),
			StartDate:         day("2024-06-01"),
			LocationID:        locationID,
			DiscountCode:      "NOPE",
			DepositMultiplier: d("2"),
		})
		assert.True(t, b.DiscountRejected)
		assert.True(t, b.DiscountAmount.IsZero())
		assert.Nil(t, b.DiscountID)
		assert.Equal(t, "330.00", b.Total.StringFixed(2))
	})

	t.Run("total is clamped at zero", func(t *testing.T) {
		disc := newDiscount(t, billing.DiscountParams{Code: "ALL", Type: billing.DiscountAmount, Value: d("1000")})
		b := billing.Compute(billing.BreakdownInput{
			Monthly:           d("110"),
			StartDate:         day("2024-06-30"),
			LocationID:        locationID,
			DiscountCode:      "ALL",
			Discount:          disc,
			DepositMultiplier: d("0"),
		})
		assert.Equal(t, "110.00", b.DiscountAmount.StringFixed(2))
		assert.True(t, b.Total.IsZero())
	})
}
