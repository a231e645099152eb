package readstore

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"
	"parkspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingListSQL = `
SELECT b.id, b.first_name, b.last_name, b.email, b.address, b.location_id, l.name, vt.label, b.category,
       b.start_date, b.end_date, b.monthly_price, b.caution, b.total_amount, b.status, b.created_at`

const bookingFromSQL = `
FROM bookings b
JOIN locations l ON l.id = b.location_id
JOIN vehicle_types vt ON vt.id = b.vehicle_type_id`

const bookingSnapshotSQL = `
SELECT id, location_id, vehicle_type_id, category, company_id, first_name, last_name, address, email,
       start_date, end_date, price_source, monthly_price, prorata_amount, discount_id, discount_code,
       discount_amount, deposit_multiplier, caution, total_amount, billing_cycle, notice_period_days,
       template_id, template_version, terms_hash, status,
       customer_signature_date, customer_signature_image, customer_signature_svg, customer_signer_ip, customer_user_agent,
       owner_signature_date, owner_signature_image, owner_signature_svg, owner_signer_ip, owner_user_agent,
       invite_token, idempotency_key, request_hash, created_at, updated_at
FROM bookings`

type BookingReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingReadStore(db db.DBTX, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{
		db:     db,
		logger: logger,
	}
}

// ListBookings applies the optional filters; From and To keep bookings whose
// period intersects [From, To].
func (s *BookingReadStore) ListBookings(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingListItem, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(args))))
	}
	if filter.Status != nil {
		add("b.status = ?", *filter.Status)
	}
	if filter.LocationID != nil {
		add("b.location_id = ?", *filter.LocationID)
	}
	if filter.From != nil {
		add("b.end_date >= ?", pgconv.DateToPgtype(*filter.From))
	}
	if filter.To != nil {
		add("b.start_date <= ?", pgconv.DateToPgtype(*filter.To))
	}

	sql := bookingListSQL + bookingFromSQL
	if len(where) > 0 {
		sql += "\nWHERE " + strings.Join(where, " AND ")
	}
	sql += "\nORDER BY b.created_at DESC, b.id DESC"

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list bookings", err)
	}
	return collect(s.logger, rows, scanBookingListItem, "failed to scan booking")
}

func (s *BookingReadStore) ListRecent(ctx context.Context, limit int) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, bookingListSQL+bookingFromSQL+`
ORDER BY b.created_at DESC, b.id DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list recent bookings", err)
	}
	return collect(s.logger, rows, scanBookingListItem, "failed to scan booking")
}

func (s *BookingReadStore) FindBookingByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		v                       queries.BookingView
		companyID               pgtype.UUID
		prorata                 pgtype.Numeric
		discountCode            pgtype.Text
		discount, multiplier    pgtype.Numeric
		customerSign, ownerSign pgtype.Timestamptz
	)
	row := s.db.QueryRow(ctx, bookingListSQL+`,
       b.vehicle_type_id, b.company_id, b.price_source, b.prorata_amount, b.discount_code, b.discount_amount,
       b.deposit_multiplier, b.billing_cycle, b.notice_period_days, b.template_id, b.template_version, b.terms_hash,
       b.customer_signature_date, b.owner_signature_date, b.updated_at`+bookingFromSQL+`
WHERE b.id = $1`, id)

	item, err := scanBookingListItem(rowWithTail{row: row, tail: []any{
		&v.VehicleTypeID, &companyID, &v.PriceSource, &prorata, &discountCode, &discount,
		&multiplier, &v.BillingCycle, &v.NoticePeriodDays, &v.TemplateID, &v.TemplateVersion, &v.TermsHash,
		&customerSign, &ownerSign, &v.UpdatedAt,
	}})
	if err != nil {
		return nil, notFoundOr(s.logger, err, "booking not found", "failed to get booking")
	}
	v.BookingListItem = *item
	v.CompanyID = pgconv.UUIDPtrFromPgtype(companyID)
	v.DiscountCode = pgconv.StringPtrFromPgtype(discountCode)
	v.CustomerSignatureDate = pgconv.TimePtrFromPgtype(customerSign)
	v.OwnerSignatureDate = pgconv.TimePtrFromPgtype(ownerSign)
	if v.ProrataAmount, err = pgconv.DecimalPtrFromNumeric(prorata); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "invalid prorata amount", err)
	}
	if v.DiscountAmount, err = pgconv.DecimalFromNumeric(discount); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "invalid discount amount", err)
	}
	if v.DepositMultiplier, err = pgconv.DecimalFromNumeric(multiplier); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "invalid deposit multiplier", err)
	}
	return &v, nil
}

func (s *BookingReadStore) Stats(ctx context.Context, since time.Time) (*queries.DashboardStats, error) {
	var st queries.DashboardStats
	err := s.db.QueryRow(ctx, `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE status = $1),
       COUNT(*) FILTER (WHERE status = $2),
       COUNT(*) FILTER (WHERE status = $3),
       COUNT(*) FILTER (WHERE created_at >= $4)
FROM bookings`,
		booking.StatusPendingCustomerSignature.String(),
		booking.StatusPendingOwnerSignature.String(),
		booking.StatusCompleted.String(),
		since,
	).Scan(&st.TotalBookings, &st.PendingCustomerSignature, &st.PendingOwnerSignature, &st.Completed, &st.Last30Days)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to compute booking stats", err)
	}
	return &st, nil
}

func (s *BookingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*booking.Snapshot, error) {
	snap, err := scanBookingSnapshot(s.db.QueryRow(ctx, bookingSnapshotSQL+` WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(s.logger, err, "booking not found", "failed to load booking")
	}
	return snap, nil
}

func (s *BookingReadStore) SnapshotByIdempotencyKey(ctx context.Context, key string) (*booking.Snapshot, error) {
	snap, err := scanBookingSnapshot(s.db.QueryRow(ctx, bookingSnapshotSQL+` WHERE idempotency_key = $1`, key))
	if err != nil {
		return nil, notFoundOr(s.logger, err, "booking not found", "failed to load booking")
	}
	return snap, nil
}

// rowWithTail appends extra scan targets after the list item columns.
type rowWithTail struct {
	row  pgx.Row
	tail []any
}

func (r rowWithTail) Scan(dest ...any) error {
	return r.row.Scan(append(dest, r.tail...)...)
}

func scanBookingListItem(row pgx.Row) (*queries.BookingListItem, error) {
	var (
		v                       queries.BookingListItem
		start, end              pgtype.Date
		monthly, caution, total pgtype.Numeric
	)
	if err := row.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Address, &v.LocationID, &v.LocationName,
		&v.VehicleLabel, &v.Category, &start, &end, &monthly, &caution, &total, &v.Status, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.StartDate = dateString(start)
	v.EndDate = dateString(end)

	var err error
	if v.MonthlyPrice, err = pgconv.DecimalFromNumeric(monthly); err != nil {
		return nil, err
	}
	if v.Caution, err = pgconv.DecimalFromNumeric(caution); err != nil {
		return nil, err
	}
	if v.TotalAmount, err = pgconv.DecimalFromNumeric(total); err != nil {
		return nil, err
	}
	return &v, nil
}

type signatureColumns struct {
	date      pgtype.Timestamptz
	image     pgtype.Text
	svg       pgtype.Text
	ip        pgtype.Text
	userAgent pgtype.Text
}

func (c *signatureColumns) targets() []any {
	return []any{&c.date, &c.image, &c.svg, &c.ip, &c.userAgent}
}

func (c *signatureColumns) slot() *booking.SignatureSlot {
	if !c.date.Valid {
		return nil
	}
	return &booking.SignatureSlot{
		SignedAt:  c.date.Time,
		Image:     c.image.String,
		SVG:       c.svg.String,
		IP:        c.ip.String,
		UserAgent: c.userAgent.String,
	}
}

func scanBookingSnapshot(row pgx.Row) (*booking.Snapshot, error) {
	var (
		s                                           booking.Snapshot
		category, source, cycle, status             string
		companyID, discountID                       pgtype.UUID
		start, end                                  pgtype.Date
		monthly, prorata, discount, multiplier      pgtype.Numeric
		caution, total                              pgtype.Numeric
		discountCode, inviteToken, idemKey, reqHash pgtype.Text
		customer, owner                             signatureColumns
	)
	dest := []any{
		&s.ID, &s.LocationID, &s.VehicleTypeID, &category, &companyID,
		&s.Customer.FirstName, &s.Customer.LastName, &s.Customer.Address, &s.Customer.Email,
		&start, &end, &source, &monthly, &prorata, &discountID, &discountCode,
		&discount, &multiplier, &caution, &total, &cycle, &s.Terms.NoticePeriodDays,
		&s.Contract.TemplateID, &s.Contract.TemplateVersion, &s.Contract.TermsHash, &status,
	}
	dest = append(dest, customer.targets()...)
	dest = append(dest, owner.targets()...)
	dest = append(dest, &inviteToken, &idemKey, &reqHash, &s.CreatedAt, &s.UpdatedAt)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	s.Category = catalog.Category(category)
	s.PriceSource = pricing.Source(source)
	s.Terms.BillingCycle = booking.BillingCycle(cycle)
	s.Status = booking.Status(status)
	s.CompanyID = pgconv.UUIDPtrFromPgtype(companyID)
	s.DiscountID = pgconv.UUIDPtrFromPgtype(discountID)
	s.DiscountCode = pgconv.StringPtrFromPgtype(discountCode)
	s.StartDate = pgconv.DateFromPgtype(start)
	s.EndDate = pgconv.DateFromPgtype(end)
	s.CustomerSign = customer.slot()
	s.OwnerSign = owner.slot()
	s.InviteToken = pgconv.StringPtrFromPgtype(inviteToken)
	s.IdempotencyKey = pgconv.StringPtrFromPgtype(idemKey)
	s.RequestHash = pgconv.StringPtrFromPgtype(reqHash)

	var err error
	if s.MonthlyPrice, err = pgconv.DecimalFromNumeric(monthly); err != nil {
		return nil, err
	}
	if s.ProrataAmount, err = pgconv.DecimalPtrFromNumeric(prorata); err != nil {
		return nil, err
	}
	if s.DiscountAmount, err = pgconv.DecimalFromNumeric(discount); err != nil {
		return nil, err
	}
	if s.DepositMultiplier, err = pgconv.DecimalFromNumeric(multiplier); err != nil {
		return nil, err
	}
	if s.Caution, err = pgconv.DecimalFromNumeric(caution); err != nil {
		return nil, err
	}
	if s.TotalAmount, err = pgconv.DecimalFromNumeric(total); err != nil {
		return nil, err
	}
	return &s, nil
}
