package converter

import (
	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/pkg/pgconv"
)

// BookingInsertArgs lists the values of a new booking in the column order of
// the repository's insert statement.
func BookingInsertArgs(s booking.Snapshot) []any {
	args := []any{
		s.ID,
		s.LocationID,
		s.VehicleTypeID,
		s.Category.String(),
		s.CompanyID,
		s.Customer.FirstName,
		s.Customer.LastName,
		s.Customer.Address,
		s.Customer.Email,
		pgconv.DateToPgtype(s.StartDate),
		pgconv.DateToPgtype(s.EndDate),
		string(s.PriceSource),
		pgconv.DecimalToNumeric(s.MonthlyPrice),
		pgconv.DecimalPtrToNumeric(s.ProrataAmount),
		s.DiscountID,
		s.DiscountCode,
		pgconv.DecimalToNumeric(s.DiscountAmount),
		pgconv.DecimalToNumeric(s.DepositMultiplier),
		pgconv.DecimalToNumeric(s.Caution),
		pgconv.DecimalToNumeric(s.TotalAmount),
		string(s.Terms.BillingCycle),
		s.Terms.NoticePeriodDays,
		s.Contract.TemplateID,
		s.Contract.TemplateVersion,
		s.Contract.TermsHash,
		s.Status.String(),
	}
	args = append(args, SignatureArgs(s.CustomerSign)...)
	return append(args,
		s.InviteToken,
		s.IdempotencyKey,
		s.RequestHash,
		s.CreatedAt,
		s.UpdatedAt,
	)
}

// SignatureArgs expands a signature slot to (date, image, svg, ip, user agent);
// a nil slot yields NULLs.
func SignatureArgs(slot *booking.SignatureSlot) []any {
	if slot == nil {
		return []any{nil, nil, nil, nil, nil}
	}
	return []any{slot.SignedAt, slot.Image, slot.SVG, slot.IP, slot.UserAgent}
}
