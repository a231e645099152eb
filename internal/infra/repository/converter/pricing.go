package converter

import (
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/pkg/pgconv"
)

func RuleInsertArgs(r *pricing.Rule) []any {
	return []any{
		r.ID,
		r.Target.LocationID,
		r.Target.VehicleTypeID,
		r.Target.Category.String(),
		pgconv.DecimalToNumeric(r.BasePrice),
		pgconv.DatePtrToPgtype(r.Window.From),
		pgconv.DatePtrToPgtype(r.Window.To),
		r.Priority,
		r.CreatedAt,
	}
}

func OverrideInsertArgs(o *pricing.Override) []any {
	return []any{
		o.ID,
		o.Target.LocationID,
		o.Target.VehicleTypeID,
		o.Target.Category.String(),
		pgconv.DecimalToNumeric(o.Price),
		pgconv.DatePtrToPgtype(o.Window.From),
		pgconv.DatePtrToPgtype(o.Window.To),
		pgconv.StringPtrToPgtype(o.Reason),
		o.CreatedAt,
	}
}
