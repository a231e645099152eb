//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"parkspace-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "110.00", "37.50", "-12.345", "100000.01"} {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)
			back, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(back), "want %s got %s", d, back)
		})
	}
}

func TestDecimalFromNumericRejectsInvalid(t *testing.T) {
	_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Valid: false})
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)

	_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)

	ptr, err := pgconv.DecimalPtrFromNumeric(pgtype.Numeric{Valid: false})
	require.NoError(t, err)
	assert.Nil(t, ptr)
}

func TestDateFromPgtypeNormalizesZone(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*3600)
	got := pgconv.DateFromPgtype(pgtype.Date{Time: time.Date(2024, 6, 10, 0, 0, 0, 0, berlin), Valid: true})
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)
	assert.Nil(t, pgconv.DatePtrFromPgtype(pgtype.Date{}))
}
