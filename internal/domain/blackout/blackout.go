package blackout

import (
	"time"

	"parkspace-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange = errs.New("end date must not be before start date")
	ErrDateConflict     = errs.New("selected dates conflict with blocked periods")
	ErrNotFound         = errs.NewKind("blackout not found", errs.ErrNotFound)
)

// Blackout blocks a location for an inclusive date range.
type Blackout struct {
	ID         uuid.UUID
	LocationID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	CreatedAt  time.Time
}

func New(locationID uuid.UUID, start, end time.Time, reason *string, now time.Time) (*Blackout, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}
	return &Blackout{
		ID:         uuid.New(),
		LocationID: locationID,
		StartDate:  start,
		EndDate:    end,
		Reason:     reason,
		CreatedAt:  now,
	}, nil
}

func ValidateRange(start, end time.Time) error {
	if end.Before(start) {
		return ErrInvalidDateRange
	}
	return nil
}

// Overlaps uses inclusive bounds on both sides, so a booking ending on the
// first blocked day conflicts.
func (b Blackout) Overlaps(start, end time.Time) bool {
	return !(end.Before(b.StartDate) || start.After(b.EndDate))
}

func Conflicts(list []Blackout, start, end time.Time) []Blackout {
	var out []Blackout
	for _, b := range list {
		if b.Overlaps(start, end) {
			out = append(out, b)
		}
	}
	return out
}

// ConflictError carries the blocked periods that rejected a booking.
type ConflictError struct {
	Periods []Blackout
}

func (e *ConflictError) Error() string {
	return ErrDateConflict.Error()
}

func NewConflictError(periods []Blackout) error {
	return errs.Mark(&ConflictError{Periods: periods}, ErrDateConflict)
}

// AsConflict extracts the conflicting periods from err.
func AsConflict(err error) ([]Blackout, bool) {
	var ce *ConflictError
	if errs.As(err, &ce) {
		return ce.Periods, true
	}
	return nil, false
}
