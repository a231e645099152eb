//go:build unit

package blackout_test

import (
	"testing"
	"time"

	"parkspace-booking/internal/domain/blackout"
	"parkspace-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func period(start, end string) blackout.Blackout {
	return blackout.Blackout{ID: uuid.New(), LocationID: uuid.New(), StartDate: day(start), EndDate: day(end)}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		blackout blackout.Blackout
		start    string
		end      string
		want     bool
	}{
		{name: "blackout inside booking", blackout: period("2024-06-15", "2024-06-18"), start: "2024-06-10", end: "2024-06-20", want: true},
		{name: "touching boundary is rejected", blackout: period("2024-06-20", "2024-06-25"), start: "2024-06-10", end: "2024-06-20", want: true},
		{name: "booking starts on last blocked day", blackout: period("2024-06-01", "2024-06-10"), start: "2024-06-10", end: "2024-06-20", want: true},
		{name: "blackout after booking", blackout: period("2024-06-21", "2024-06-25"), start: "2024-06-10", end: "2024-06-20", want: false},
		{name: "blackout before booking", blackout: period("2024-06-01", "2024-06-09"), start: "2024-06-10", end: "2024-06-20", want: false},
		{name: "booking inside blackout", blackout: period("2024-06-01", "2024-06-30"), start: "2024-06-10", end: "2024-06-20", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.blackout.Overlaps(day(tc.start), day(tc.end)))
		})
	}
}

func TestConflicts(t *testing.T) {
	list := []blackout.Blackout{
		period("2024-06-01", "2024-06-05"),
		period("2024-06-15", "2024-06-18"),
		period("2024-07-01", "2024-07-10"),
	}

	got := blackout.Conflicts(list, day("2024-06-04"), day("2024-06-20"))
	require.Len(t, got, 2)
	assert.Equal(t, list[0].ID, got[0].ID)
	assert.Equal(t, list[1].ID, got[1].ID)

	assert.Empty(t, blackout.Conflicts(list, day("2024-06-06"), day("2024-06-14")))
}

func TestConflictError(t *testing.T) {
	periods := []blackout.Blackout{period("2024-06-15", "2024-06-18")}
	err := errs.Wrap(blackout.NewConflictError(periods), "create booking")

	assert.True(t, errs.Is(err, blackout.ErrDateConflict))
	got, ok := blackout.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, periods, got)

	_, ok = blackout.AsConflict(blackout.ErrInvalidDateRange)
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	_, err := blackout.New(uuid.New(), day("2024-06-10"), day("2024-06-09"), nil, time.Now())
	assert.True(t, errs.Is(err, blackout.ErrInvalidDateRange))

	b, err := blackout.New(uuid.New(), day("2024-06-10"), day("2024-06-10"), nil, time.Now())
	require.NoError(t, err)
	assert.True(t, b.Overlaps(day("2024-06-10"), day("2024-06-10")))
}
