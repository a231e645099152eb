package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/domain/money"
	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

func (uc *bookingUseCaseImpl) enqueueCreated(ctx context.Context, tx shared.Tx, b *booking.Booking, loc *shared.LocationSnapshot, now time.Time) error {
	customer := b.Customer()
	summary := bookingSummary(b, loc)

	confirmation := shared.EmailMessage{
		BookingID: b.ID(),
		To:        customer.Email,
		ToName:    customer.FirstName + " " + customer.LastName,
		Subject:   fmt.Sprintf("Buchungsbestätigung #%s – Stellplatz %s", shortID(b.ID()), loc.Name),
		Body: fmt.Sprintf("Hallo %s %s,\n\nvielen Dank für Ihre Buchung. Ihr Vertrag wird nach der Unterschrift des Vermieters wirksam.\n\n%s",
			customer.FirstName, customer.LastName, summary),
	}
	if err := enqueueEmail(ctx, tx, shared.TopicBookingConfirmation, confirmation, now); err != nil {
		return err
	}

	recipient := uc.notify.AdminEmail
	if loc.Company != nil && loc.Company.Email != nil && *loc.Company.Email != "" {
		recipient = *loc.Company.Email
	}
	if recipient == "" {
		uc.logger.Warn("no recipient for admin booking notice", "booking_id", b.ID().String())
		return nil
	}

	notice := shared.EmailMessage{
		BookingID: b.ID(),
		To:        recipient,
		Subject:   fmt.Sprintf("Neue Buchung #%s – %s %s", shortID(b.ID()), customer.FirstName, customer.LastName),
		Body:      fmt.Sprintf("Eine neue Buchung wartet auf die Unterschrift des Vermieters.\n\nMieter: %s %s <%s>\n%s", customer.FirstName, customer.LastName, customer.Email, summary),
	}
	return enqueueEmail(ctx, tx, shared.TopicBookingAdminNotice, notice, now)
}

func (uc *bookingUseCaseImpl) enqueueCompleted(ctx context.Context, tx shared.Tx, b *booking.Booking, rendered *shared.RenderedContract, now time.Time) error {
	customer := b.Customer()
	attachment := &shared.EmailAttachment{
		Filename:    fmt.Sprintf("vertrag-%s.md", shortID(b.ID())),
		ContentType: "text/markdown",
		Content:     rendered.Body,
	}

	msg := shared.EmailMessage{
		BookingID: b.ID(),
		To:        customer.Email,
		ToName:    customer.FirstName + " " + customer.LastName,
		Subject:   fmt.Sprintf("Vertrag abgeschlossen #%s", shortID(b.ID())),
		Body: fmt.Sprintf("Hallo %s %s,\n\nIhr Stellplatzmietvertrag wurde vom Vermieter unterschrieben und ist damit abgeschlossen. Den Vertrag finden Sie im Anhang.\n\nPrüfsumme: %s",
			customer.FirstName, customer.LastName, rendered.TermsHash),
		Attachment: attachment,
	}
	return enqueueEmail(ctx, tx, shared.TopicContractCompleted, msg, now)
}

func enqueueEmail(ctx context.Context, tx shared.Tx, topic string, msg shared.EmailMessage, runAt time.Time) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, shared.NotificationKindEmail, topic, payload, runAt)
}

func bookingSummary(b *booking.Booking, loc *shared.LocationSnapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Standort: %s (%s)\n", loc.Name, loc.Address)
	fmt.Fprintf(&sb, "Kategorie: %s\n", b.Category().Label())
	fmt.Fprintf(&sb, "Zeitraum: %s – %s\n", caldate.FormatGerman(b.StartDate()), caldate.FormatGerman(b.EndDate()))
	fmt.Fprintf(&sb, "Monatsmiete (netto): € %s\n", money.Format(b.MonthlyPrice()))
	if p := b.ProrataAmount(); p != nil {
		fmt.Fprintf(&sb, "Anteilige Miete erster Monat: € %s\n", money.Format(*p))
	}
	if b.DiscountAmount().IsPositive() {
		fmt.Fprintf(&sb, "Rabatt: -€ %s\n", money.Format(b.DiscountAmount()))
	}
	fmt.Fprintf(&sb, "Kaution: € %s\n", money.Format(b.Caution()))
	fmt.Fprintf(&sb, "Gesamt fällig: € %s\n", money.Format(b.TotalAmount()))
	return sb.String()
}

func shortID(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:8])
}
