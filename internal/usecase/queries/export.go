package queries

import (
	"context"
	"encoding/csv"
	"io"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/usecase/shared"
)

var exportHeader = []string{
	"ID", "Vorname", "Nachname", "Email", "Adresse", "Standort", "Fahrzeug", "Kategorie",
	"Von", "Bis", "Monatsmiete", "Kaution", "Gesamt", "Status", "Erstellt",
}

const exportTimeLayout = "2006-01-02 15:04:05"

type ExportQueries interface {
	// ExportBookings writes the filtered bookings as CSV and records the export in the audit log.
	ExportBookings(ctx context.Context, filter BookingFilter, w io.Writer, origin audit.Origin) error
}

type exportQueriesImpl struct {
	store BookingReadStore
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewExportQueries(store BookingReadStore, uow shared.UnitOfWork, clock clock.Clock) ExportQueries {
	return &exportQueriesImpl{
		store: store,
		uow:   uow,
		clock: clock,
	}
}

func (q *exportQueriesImpl) ExportBookings(ctx context.Context, filter BookingFilter, w io.Writer, origin audit.Origin) error {
	rows, err := q.store.ListBookings(ctx, filter)
	if err != nil {
		return err
	}

	err = q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		event := audit.NewEvent(audit.ActorAdmin, audit.ActionBookingsExported, audit.EntityBooking, nil,
			map[string]any{"count": len(rows)}, origin, q.clock.Now())
		return tx.Audit().Append(ctx, event)
	})
	if err != nil {
		return err
	}

	return WriteBookingsCSV(w, rows)
}

func WriteBookingsCSV(w io.Writer, rows []*BookingListItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return errs.Wrap(err, "failed to write csv header")
	}
	for _, b := range rows {
		record := []string{
			b.ID.String(),
			b.FirstName,
			b.LastName,
			b.Email,
			b.Address,
			b.LocationName,
			b.VehicleLabel,
			b.Category,
			b.StartDate,
			b.EndDate,
			b.MonthlyPrice.StringFixed(2),
			b.Caution.StringFixed(2),
			b.TotalAmount.StringFixed(2),
			b.Status,
			b.CreatedAt.Format(exportTimeLayout),
		}
		if err := cw.Write(record); err != nil {
			return errs.Wrap(err, "failed to write csv row")
		}
	}
	cw.Flush()
	return cw.Error()
}
