package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleType is immutable reference data; MaxLength is in meters.
type VehicleType struct {
	ID        uuid.UUID
	MaxLength decimal.Decimal
	Label     string
}

// DefaultLabel renders the German label used by the seed data, e.g. "bis 6,50 m".
func DefaultLabel(maxLength decimal.Decimal) string {
	return fmt.Sprintf("bis %s m", strings.Replace(maxLength.StringFixed(2), ".", ",", 1))
}
