//go:build unit || e2e

package builder

import (
	"time"

	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/pricing"
	reqdto "parkspace-booking/internal/handler/dto/request"
	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	LocationID        uuid.UUID
	VehicleTypeID     uuid.UUID
	Category          catalog.Category
	CompanyID         *uuid.UUID
	FirstName         string
	LastName          string
	Address           string
	Email             string
	StartDate         time.Time
	EndDate           time.Time
	Monthly           decimal.Decimal
	DepositMultiplier decimal.Decimal
	DiscountCode      string
	BillingCycle      booking.BillingCycle
	NoticePeriodDays  int
	TemplateID        uuid.UUID
	TemplateVersion   int
	SignatureSVG      string
	IdempotencyKey    *string
	Now               time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		LocationID:        uuid.New(),
		VehicleTypeID:     uuid.New(),
		Category:          catalog.CategoryIndoor,
		FirstName:         "Erika",
		LastName:          "Mustermann",
		Address:           "Hauptstraße 1, 12345 Berlin",
		Email:             "erika@example.com",
		StartDate:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC),
		Monthly:           decimal.NewFromInt(110),
		DepositMultiplier: billing.DefaultDepositMultiplier,
		BillingCycle:      booking.BillingMonthly,
		NoticePeriodDays:  booking.DefaultNoticePeriodDays,
		TemplateID:        uuid.New(),
		TemplateVersion:   1,
		SignatureSVG:      testutil.ValidSignatureSVG(),
		Now:               time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Breakdown() billing.Breakdown {
	return billing.Compute(billing.BreakdownInput{
		Monthly:           b.Monthly,
		StartDate:         b.StartDate,
		LocationID:        b.LocationID,
		DiscountCode:      b.DiscountCode,
		DepositMultiplier: b.DepositMultiplier,
	})
}

func (b *BookingBuilder) BuildParams() booking.Params {
	return booking.Params{
		LocationID:    b.LocationID,
		VehicleTypeID: b.VehicleTypeID,
		Category:      b.Category,
		CompanyID:     b.CompanyID,
		Customer: booking.Customer{
			FirstName: b.FirstName,
			LastName:  b.LastName,
			Address:   b.Address,
			Email:     b.Email,
		},
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		PriceSource: pricing.SourceFormula,
		Billing:     b.Breakdown(),
		Terms:       booking.Terms{BillingCycle: b.BillingCycle, NoticePeriodDays: b.NoticePeriodDays},
		Contract: booking.Contract{
			TemplateID:      b.TemplateID,
			TemplateVersion: b.TemplateVersion,
			TermsHash:       "0000000000000000000000000000000000000000000000000000000000000000",
		},
		CustomerSign: booking.SignatureSlot{
			Image:     testutil.SignatureImage,
			SVG:       b.SignatureSVG,
			IP:        "192.0.2.10",
			UserAgent: "Mozilla/5.0",
		},
		IdempotencyKey: b.IdempotencyKey,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.New(b.BuildParams(), b.Now)
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

// BuildRequest returns the public create request for the builder's values.
func (b *BookingBuilder) BuildRequest() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		LocationID:     b.LocationID,
		VehicleTypeID:  b.VehicleTypeID,
		Category:       string(b.Category),
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		Address:        b.Address,
		Email:          b.Email,
		StartDate:      caldate.Format(b.StartDate),
		EndDate:        caldate.Format(b.EndDate),
		SignatureImage: testutil.SignatureImage,
		SignatureSVG:   b.SignatureSVG,
		IdempotencyKey: b.IdempotencyKey,
	}
	if b.DiscountCode != "" {
		code := b.DiscountCode
		req.DiscountCode = &code
	}
	return req
}
