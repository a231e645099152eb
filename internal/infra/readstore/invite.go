package readstore

import (
	"context"
	"log/slog"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/invite"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/pkg/pgconv"
	"parkspace-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type InviteReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewInviteReadStore(db db.DBTX, logger *slog.Logger) *InviteReadStore {
	return &InviteReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *InviteReadStore) FindInvite(ctx context.Context, token string) (*queries.InviteView, error) {
	var (
		v            queries.InviteView
		locationID   pgtype.UUID
		locationName pgtype.Text
		vehicleID    pgtype.UUID
		category     pgtype.Text
		email        pgtype.Text
		usedAt       pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, `
SELECT t.token, t.location_id, l.name, t.vehicle_type_id, t.category, t.prefill_email, t.expires_at, t.used_at
FROM invite_tokens t
LEFT JOIN locations l ON l.id = t.location_id
WHERE t.token = $1`, token).Scan(
		&v.Token, &locationID, &locationName, &vehicleID, &category, &email, &v.ExpiresAt, &usedAt,
	)
	if err != nil {
		return nil, notFoundOr(s.logger, err, "invite not found", "failed to get invite")
	}
	v.LocationID = pgconv.UUIDPtrFromPgtype(locationID)
	v.LocationName = pgconv.StringPtrFromPgtype(locationName)
	v.VehicleTypeID = pgconv.UUIDPtrFromPgtype(vehicleID)
	v.Category = pgconv.StringPtrFromPgtype(category)
	v.PrefillEmail = pgconv.StringPtrFromPgtype(email)
	v.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
	return &v, nil
}

func (s *InviteReadStore) TokenByValue(ctx context.Context, token string) (*invite.Token, error) {
	var (
		t          invite.Token
		locationID pgtype.UUID
		vehicleID  pgtype.UUID
		category   pgtype.Text
		email      pgtype.Text
		usedAt     pgtype.Timestamptz
		bookingID  pgtype.UUID
	)
	err := s.db.QueryRow(ctx, `
SELECT token, location_id, vehicle_type_id, category, prefill_email, expires_at, used_at, booking_id, created_at
FROM invite_tokens WHERE token = $1`, token).Scan(
		&t.Token, &locationID, &vehicleID, &category, &email, &t.ExpiresAt, &usedAt, &bookingID, &t.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOr(s.logger, err, "invite not found", "failed to get invite")
	}
	t.LocationID = pgconv.UUIDPtrFromPgtype(locationID)
	t.VehicleTypeID = pgconv.UUIDPtrFromPgtype(vehicleID)
	if category.Valid {
		c := catalog.Category(category.String)
		t.Category = &c
	}
	t.PrefillEmail = pgconv.StringPtrFromPgtype(email)
	t.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
	t.BookingID = pgconv.UUIDPtrFromPgtype(bookingID)
	return &t, nil
}
