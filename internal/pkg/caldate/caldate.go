// Package caldate handles calendar dates without a time component.
// A date is a time.Time at midnight UTC.
package caldate

import (
	"time"

	"parkspace-booking/internal/pkg/errs"
)

const (
	Layout       = "2006-01-02"
	GermanLayout = "02.01.2006"
)

var ErrInvalidDate = errs.New("invalid calendar date")

func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(err, "parse date %q", s), ErrInvalidDate)
	}
	return t, nil
}

// ParseOptional returns nil for an empty string.
func ParseOptional(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func Of(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

func FormatGerman(t time.Time) string {
	return t.Format(GermanLayout)
}

func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
