package queries

const (
	DefaultListLimit  = 50
	DefaultAuditLimit = 100
	MaxListLimit      = 200
)

type Page struct {
	Limit  int
	Offset int
}

func NewPage(limit, offset int) Page {
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: ValidateLimit(limit), Offset: offset}
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// NewAuditPage defaults to the larger audit log page.
func NewAuditPage(limit, offset int) Page {
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	return NewPage(limit, offset)
}
