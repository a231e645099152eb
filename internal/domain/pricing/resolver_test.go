//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"parkspace-booking/internal/domain/catalog"
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

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func vehicle(length string) catalog.VehicleType {
	return catalog.VehicleType{ID: uuid.New(), MaxLength: d(length), Label: catalog.DefaultLabel(d(length))}
}

func baseInput() pricing.ResolveInput {
	return pricing.ResolveInput{
		Date:           day("2024-06-10"),
		VehicleType:    vehicle("6.0"),
		Category:       catalog.CategoryIndoor,
		BasePrice:      d("100"),
		FormulaEnabled: true,
	}
}

func TestFormulaPrice(t *testing.T) {
	cases := []struct {
		name     string
		length   string
		category catalog.Category
		want     string
	}{
		{name: "at threshold outside", length: "5.0", category: catalog.CategoryOutside, want: "50.00"},
		{name: "one step indoor", length: "5.5", category: catalog.CategoryIndoor, want: "110.00"},
		{name: "two steps indoor", length: "6.0", category: catalog.CategoryIndoor, want: "120.00"},
		{name: "partial step rounds up", length: "5.2", category: catalog.CategoryIndoor, want: "110.00"},
		{name: "covered 7.5", length: "7.5", category: catalog.CategoryCovered, want: "112.50"},
		{name: "outside 8.5", length: "8.5", category: catalog.CategoryOutside, want: "85.00"},
		{name: "below threshold", length: "4.5", category: catalog.CategoryIndoor, want: "100.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.FormulaPrice(d("100"), d(tc.length), tc.category)
			assert.Equal(t, tc.want, got.StringFixed(2))
		})
	}

	t.Run("base price is rounded through the factor", func(t *testing.T) {
		got := pricing.FormulaPrice(d("99.99"), d("5.5"), catalog.CategoryCovered)
		// (99.99 + 10) * 0.75 = 82.4925
		assert.Equal(t, "82.49", got.StringFixed(2))
	})
}

func TestResolve(t *testing.T) {
	resolver := pricing.NewLayeredResolver()

	t.Run("formula fallback end to end", func(t *testing.T) {
		q, err := resolver.Resolve(baseInput())
		require.NoError(t, err)
		assert.Equal(t, pricing.SourceFormula, q.Source)
		assert.Equal(t, "120.00", q.Price.StringFixed(2))
		assert.Nil(t, q.SourceID)
	})

	t.Run("formula fallback for a single surcharge step", func(t *testing.T) {
		in := baseInput()
		in.VehicleType = vehicle("5.5")

		q, err := resolver.Resolve(in)
		require.NoError(t, err)
		assert.Equal(t, pricing.SourceFormula, q.Source)
		assert.Equal(t, "110.00", q.Price.StringFixed(2))
	})

	t.Run("override beats rule regardless of priority", func(t *testing.T) {
		in := baseInput()
		in.Rules = []pricing.Rule{{ID: uuid.New(), BasePrice: d("80"), Priority: 100, CreatedAt: day("2024-06-01")}}
		in.Overrides = []pricing.Override{{
			ID:        uuid.New(),
			Price:     d("60"),
			Window:    pricing.ValidityWindow{From: dayPtr("2024-06-01"), To: dayPtr("2024-06-30")},
			CreatedAt: day("2024-05-01"),
		}}

		q, err := resolver.Resolve(in)
		require.NoError(t, err)
		assert.Equal(t, pricing.SourceOverride, q.Source)
		assert.True(t, q.Price.Equal(d("60")))
		require.NotNil(t, q.SourceID)
		assert.Equal(t, in.Overrides[0].ID, *q.SourceID)
	})

	t.Run("override outside window is ignored", func(t *testing.T) {
		in := baseInput()
		in.Overrides = []pricing.Override{{
			ID:     uuid.New(),
			Price:  d("60"),
			Window: pricing.ValidityWindow{From: dayPtr("2024-07-01"), To: dayPtr("2024-07-31")},
		}}
		in.Rules = []pricing.Rule{{ID: uuid.New(), BasePrice: d("80")}}

		q, err := resolver.Resolve(in)
		require.NoError(t, err)
		assert.Equal(t, pricing.SourceRule, q.Source)
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		in := baseInput()
		in.Overrides = []pricing.Override{{
			ID:     uuid.New(),
			Price:  d("60"),
			Window: pricing.ValidityWindow{From: dayPtr("2024-06-01"), To: dayPtr("2024-06-10")},
		}}
		q, err := resolver.Resolve(in)
		require.NoError(t, err)
		assert.Equal(t, pricing.SourceOverride, q.Source)

		in.Date = day("2024-06-11")
		q, err = resolver.Resolve(in)
		require.NoError(t, err)
		assert.Equal(t, pricing.SourceFormula, q.Source)
	})

	t.Run("newest override wins", func(t *testing.T) {
		in := baseInput()
		window := pricing.ValidityWindow{From: dayPtr("2024-01-01"), To: dayPtr("2024-12-31")}
		in.Overrides = []pricing.Override{
			{ID: uuid.New(), Price: d("10"), Window: window, CreatedAt: day("2024-01-01")},
			{ID: uuid.New(), Price: d("20"), Window: window, CreatedAt: day("2024-03-01")},
			{ID: uuid.New(), Price: d("30"), Window: window, CreatedAt: day("2024-02-01")},
		}
		q, err := resolver.Resolve(in)
		require.NoError(t, err)
		assert.True(t, q.Price.Equal(d("20")))
	})

	t.Run("highest priority rule wins, ties go to newest", func(t *testing.T) {
		in := baseInput()
		in.Rules = []pricing.Rule{
			{ID: uuid.New(), BasePrice: d("70"), Priority: 5, CreatedAt: day("2024-05-01")},
			{ID: uuid.New(), BasePrice: d("90"), Priority: 10, CreatedAt: day("2024-01-01")},
			{ID: uuid.New(), BasePrice: d("95"), Priority: 10, CreatedAt: day("2024-02-01")},
			{ID: uuid.New(), BasePrice: d("99"), Priority: 50, Window: pricing.ValidityWindow{To: dayPtr("2024-05-31")}},
		}
		q, err := resolver.Resolve(in)
		require.NoError(t, err)
		assert.Equal(t, pricing.SourceRule, q.Source)
		assert.True(t, q.Price.Equal(d("95")))
	})

	t.Run("open-ended rule windows", func(t *testing.T) {
		in := baseInput()
		in.Rules = []pricing.Rule{{ID: uuid.New(), BasePrice: d("42"), Window: pricing.ValidityWindow{From: dayPtr("2020-01-01")}}}
		q, err := resolver.Resolve(in)
		require.NoError(t, err)
		assert.True(t, q.Price.Equal(d("42")))
	})

	t.Run("legacy only when formula disabled", func(t *testing.T) {
		legacy := d("130")
		in := baseInput()
		in.LegacyPrice = &legacy

		q, err := resolver.Resolve(in)
		require.NoError(t, err)
		assert.Equal(t, pricing.SourceFormula, q.Source)

		in.FormulaEnabled = false
		q, err = resolver.Resolve(in)
		require.NoError(t, err)
		assert.Equal(t, pricing.SourceLegacy, q.Source)
		assert.True(t, q.Price.Equal(legacy))
	})

	t.Run("no price when formula disabled and nothing else applies", func(t *testing.T) {
		in := baseInput()
		in.FormulaEnabled = false
		_, err := resolver.Resolve(in)
		assert.True(t, errs.Is(err, pricing.ErrNoPriceRule))
	})

	t.Run("invalid category", func(t *testing.T) {
		in := baseInput()
		in.Category = catalog.Category("garage")
		_, err := resolver.Resolve(in)
		assert.True(t, errs.Is(err, catalog.ErrInvalidCategory))
	})

	t.Run("deterministic across calls and candidate order", func(t *testing.T) {
		in := baseInput()
		at := day("2024-01-01")
		a := pricing.Rule{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000a"), BasePrice: d("1"), CreatedAt: at}
		b := pricing.Rule{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000b"), BasePrice: d("2"), CreatedAt: at}

		in.Rules = []pricing.Rule{a, b}
		first, err := resolver.Resolve(in)
		require.NoError(t, err)

		in.Rules = []pricing.Rule{b, a}
		second, err := resolver.Resolve(in)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.True(t, first.Price.Equal(d("2")))
	})
}

func TestNewRuleAndOverride(t *testing.T) {
	target := pricing.Target{LocationID: uuid.New(), VehicleTypeID: uuid.New(), Category: catalog.CategoryCovered}
	now := day("2024-06-01")

	t.Run("rule validation", func(t *testing.T) {
		_, err := pricing.NewRule(target, d("-1"), pricing.ValidityWindow{}, 0, now)
		assert.True(t, errs.Is(err, pricing.ErrNegativePrice))

		_, err = pricing.NewRule(target, d("10"), pricing.ValidityWindow{}, 101, now)
		assert.True(t, errs.Is(err, pricing.ErrInvalidPriority))

		_, err = pricing.NewRule(target, d("10"), pricing.ValidityWindow{From: dayPtr("2024-02-01"), To: dayPtr("2024-01-01")}, 1, now)
		assert.True(t, errs.Is(err, pricing.ErrInvalidWindow))

		r, err := pricing.NewRule(target, d("10"), pricing.ValidityWindow{}, 100, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID)
	})

	t.Run("override requires both bounds", func(t *testing.T) {
		_, err := pricing.NewOverride(target, d("10"), dayPtr("2024-01-01"), nil, nil, now)
		assert.True(t, errs.Is(err, pricing.ErrWindowRequired))

		o, err := pricing.NewOverride(target, d("10"), dayPtr("2024-01-01"), dayPtr("2024-01-01"), nil, now)
		require.NoError(t, err)
		assert.True(t, o.Window.Contains(day("2024-01-01")))
	})
}
