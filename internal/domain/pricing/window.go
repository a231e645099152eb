package pricing

import "time"

// ValidityWindow is an inclusive date range; a nil bound is open-ended.
type ValidityWindow struct {
	From *time.Time
	To   *time.Time
}

func (w ValidityWindow) Contains(date time.Time) bool {
	if w.From != nil && date.Before(*w.From) {
		return false
	}
	if w.To != nil && date.After(*w.To) {
		return false
	}
	return true
}

func (w ValidityWindow) Validate() error {
	if w.From != nil && w.To != nil && w.To.Before(*w.From) {
		return ErrInvalidWindow
	}
	return nil
}
