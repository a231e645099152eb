//go:build unit

package booking_test

import (
	"testing"
	"time"

	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPendingOwnerSignature, actual.Status())
		require.NotNil(t, actual.CustomerSignature())
		assert.Equal(t, b.Now, actual.CustomerSignature().SignedAt)
		assert.Nil(t, actual.OwnerSignature())
		assert.Equal(t, "330.00", actual.TotalAmount().StringFixed(2))
		assert.Equal(t, "220.00", actual.Caution().StringFixed(2))
		assert.Nil(t, actual.ProrataAmount())
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	t.Run("customer validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "short first name", mutate: func(b *builder.BookingBuilder) { b.FirstName = "E" }, errIs: booking.ErrInvalidCustomer},
			{name: "trimmed first name too short", mutate: func(b *builder.BookingBuilder) { b.FirstName = " E " }, errIs: booking.ErrInvalidCustomer},
			{name: "short address", mutate: func(b *builder.BookingBuilder) { b.Address = "abc" }, errIs: booking.ErrInvalidCustomer},
			{name: "invalid email", mutate: func(b *builder.BookingBuilder) { b.Email = "not-an-email" }, errIs: booking.ErrInvalidCustomer},
			{name: "umlauts count as one character", mutate: func(b *builder.BookingBuilder) { b.LastName = "Öz" }},
		})
	})

	t.Run("terms validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "end before start", mutate: func(b *builder.BookingBuilder) { b.EndDate = b.StartDate.AddDate(0, 0, -1) }, errIs: booking.ErrInvalidDateRange},
			{name: "end equals start", mutate: func(b *builder.BookingBuilder) { b.EndDate = b.StartDate }, errIs: booking.ErrInvalidDateRange},
			{name: "unknown billing cycle", mutate: func(b *builder.BookingBuilder) { b.BillingCycle = "weekly" }, errIs: booking.ErrInvalidBillingCycle},
			{name: "empty billing cycle defaults", mutate: func(b *builder.BookingBuilder) { b.BillingCycle = "" }},
			{name: "notice period over a year", mutate: func(b *builder.BookingBuilder) { b.NoticePeriodDays = 366 }, errIs: booking.ErrInvalidNoticePeriod},
			{name: "deposit multiplier above ten", mutate: func(b *builder.BookingBuilder) { b.DepositMultiplier = decimal.NewFromInt(11) }, errIs: billing.ErrInvalidDepositMultiplier},
			{name: "invalid category", mutate: func(b *builder.BookingBuilder) { b.Category = "roof" }, errIs: catalog.ErrInvalidCategory},
		})
	})
}

func TestSignOwner(t *testing.T) {
	now := time.Date(2024, time.May, 21, 9, 0, 0, 0, time.UTC)
	slot := booking.SignatureSlot{SVG: "M0 0", IP: "198.51.100.7", UserAgent: "curl"}

	t.Run("completes a pending booking", func(t *testing.T) {
		bk := builder.NewBookingBuilder().MustBuildDomain()
		require.NoError(t, bk.SignOwner(slot, now))

		assert.Equal(t, booking.StatusCompleted, bk.Status())
		require.NotNil(t, bk.OwnerSignature())
		assert.Equal(t, now, bk.OwnerSignature().SignedAt)
		assert.Equal(t, now, bk.UpdatedAt())
	})

	t.Run("second signature fails already completed", func(t *testing.T) {
		bk := builder.NewBookingBuilder().MustBuildDomain()
		require.NoError(t, bk.SignOwner(slot, now))
		first := *bk.OwnerSignature()

		err := bk.SignOwner(booking.SignatureSlot{SVG: "other"}, now.Add(time.Minute))
		assert.True(t, errs.Is(err, booking.ErrAlreadyCompleted))
		assert.Equal(t, first, *bk.OwnerSignature())
	})

	t.Run("owner cannot sign before customer", func(t *testing.T) {
		bk, err := booking.NewUnsigned(builder.NewBookingBuilder().BuildParams(), now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPendingCustomerSignature, bk.Status())

		err = bk.SignOwner(slot, now)
		assert.True(t, errs.Is(err, booking.ErrInvalidTransition))
	})
}

func TestSignCustomer(t *testing.T) {
	now := time.Date(2024, time.May, 21, 9, 0, 0, 0, time.UTC)
	bk, err := booking.NewUnsigned(builder.NewBookingBuilder().BuildParams(), now)
	require.NoError(t, err)
	assert.Nil(t, bk.CustomerSignature())

	require.NoError(t, bk.SignCustomer(booking.SignatureSlot{SVG: "M0 0"}, now))
	assert.Equal(t, booking.StatusPendingOwnerSignature, bk.Status())

	err = bk.SignCustomer(booking.SignatureSlot{SVG: "M0 0"}, now)
	assert.True(t, errs.Is(err, booking.ErrInvalidTransition))
}

func TestSnapshotRoundTrip(t *testing.T) {
	bk := builder.NewBookingBuilder().MustBuildDomain()
	restored := booking.Reconstruct(bk.Snapshot())
	assert.Equal(t, bk, restored)
}

func TestStatusTransition(t *testing.T) {
	assert.NoError(t, booking.StatusPendingCustomerSignature.Transition(booking.StatusPendingOwnerSignature))
	assert.NoError(t, booking.StatusPendingOwnerSignature.Transition(booking.StatusCompleted))
	assert.True(t, errs.Is(booking.StatusPendingCustomerSignature.Transition(booking.StatusCompleted), booking.ErrInvalidTransition))
	assert.True(t, errs.Is(booking.StatusCompleted.Transition(booking.StatusCompleted), booking.ErrAlreadyCompleted))
	assert.True(t, errs.Is(booking.StatusPendingOwnerSignature.Transition(booking.StatusPendingCustomerSignature), booking.ErrInvalidTransition))

	_, err := booking.ParseStatus("cancelled")
	assert.True(t, errs.Is(err, booking.ErrInvalidStatus))
}
