package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps the current optional value unless an update is supplied.
// An update pointing at the zero value clears the field.
func CoalescePtr[T comparable](update *T, current *T) *T {
	if update == nil {
		return current
	}
	var zero T
	if *update == zero {
		return nil
	}
	v := *update
	return &v
}
