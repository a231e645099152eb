package queries

import (
	"context"
	"time"

	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	RecentBookingsLimit = 10
	DashboardWindow     = 30 * 24 * time.Hour
)

type BookingQueries interface {
	ListBookings(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	Dashboard(ctx context.Context) (*DashboardView, error)
	Contract(ctx context.Context, id uuid.UUID) (*ContractView, error)
}

type BookingReadStore interface {
	ListBookings(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error)
	FindBookingByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// Stats counts bookings per status and those created at or after since.
	Stats(ctx context.Context, since time.Time) (*DashboardStats, error)
	ListRecent(ctx context.Context, limit int) ([]*BookingListItem, error)
}

// ContractReads loads a booking and everything its contract is rendered from.
type ContractReads interface {
	shared.ContractSources
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Snapshot, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	reads ContractReads
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, reads ContractReads, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		store: store,
		reads: reads,
		clock: clock,
	}
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error) {
	if filter.Status != nil {
		if _, err := booking.ParseStatus(*filter.Status); err != nil {
			return nil, err
		}
	}
	return q.store.ListBookings(ctx, filter)
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindBookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *bookingQueriesImpl) Dashboard(ctx context.Context) (*DashboardView, error) {
	stats, err := q.store.Stats(ctx, q.clock.Now().Add(-DashboardWindow))
	if err != nil {
		return nil, err
	}
	recent, err := q.store.ListRecent(ctx, RecentBookingsLimit)
	if err != nil {
		return nil, err
	}
	return &DashboardView{
		Stats:          *stats,
		RecentBookings: recent,
	}, nil
}

func (q *bookingQueriesImpl) Contract(ctx context.Context, id uuid.UUID) (*ContractView, error) {
	snapshot, err := q.reads.BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}

	rendered, err := shared.RenderContract(ctx, q.reads, snapshot)
	if err != nil {
		return nil, err
	}
	return &ContractView{
		BookingID:       rendered.BookingID,
		TemplateID:      rendered.TemplateID,
		TemplateVersion: rendered.TemplateVersion,
		TermsHash:       rendered.TermsHash,
		Body:            rendered.Body,
	}, nil
}
