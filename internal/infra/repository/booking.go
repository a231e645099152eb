package repository

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const insertBookingSQL = `
INSERT INTO bookings (
    id, location_id, vehicle_type_id, category, company_id,
    first_name, last_name, address, email, start_date, end_date,
    price_source, monthly_price, prorata_amount, discount_id, discount_code, discount_amount,
    deposit_multiplier, caution, total_amount, billing_cycle, notice_period_days,
    template_id, template_version, terms_hash, status,
    customer_signature_date, customer_signature_image, customer_signature_svg, customer_signer_ip, customer_user_agent,
    invite_token, idempotency_key, request_hash, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9,
    $10, $11, $12, $13, $14, $15, $16, $17, $18,
    $19, $20, $21, $22, $23, $24, $25, $26, $27,
    $28, $29, $30, $31, $32, $33, $34, $35, $36
)`

const recordCustomerSignatureSQL = `
UPDATE bookings
SET status = 'pending_owner_signature',
    customer_signature_date = $2, customer_signature_image = $3, customer_signature_svg = $4,
    customer_signer_ip = $5, customer_user_agent = $6, updated_at = now()
WHERE id = $1 AND status = 'pending_customer_signature'`

const completeOwnerSignatureSQL = `
UPDATE bookings
SET status = 'completed',
    owner_signature_date = $2, owner_signature_image = $3, owner_signature_svg = $4,
    owner_signer_ip = $5, owner_user_agent = $6, updated_at = now()
WHERE id = $1 AND status = 'pending_owner_signature'`

type BookingRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingRepository(db db.DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, insertBookingSQL, converter.BookingInsertArgs(b.Snapshot())...)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) RecordCustomerSignature(ctx context.Context, id uuid.UUID, slot booking.SignatureSlot) (int64, error) {
	return r.sign(ctx, recordCustomerSignatureSQL, id, slot, "failed to record customer signature")
}

func (r *BookingRepository) CompleteOwnerSignature(ctx context.Context, id uuid.UUID, slot booking.SignatureSlot) (int64, error) {
	return r.sign(ctx, completeOwnerSignatureSQL, id, slot, "failed to complete owner signature")
}

func (r *BookingRepository) sign(ctx context.Context, sql string, id uuid.UUID, slot booking.SignatureSlot, msg string) (int64, error) {
	args := append([]any{id}, converter.SignatureArgs(&slot)...)
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
	return tag.RowsAffected(), nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to delete booking", err)
	}
	return tag.RowsAffected(), nil
}
