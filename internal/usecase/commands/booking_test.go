//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/domain/blackout"
	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/contract"
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/domain/signature"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/usecase/commands"
	"parkspace-booking/internal/usecase/shared"
	"parkspace-booking/tests/common/builder"
	"parkspace-booking/tests/common/testutil"
	sharedmock "parkspace-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notFound() error {
	return infra.WrapRepoErr(discardLogger(), infra.KindNotFound, "row not found", nil)
}

type uowFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	discounts     *sharedmock.MockDiscountRepository
	invites       *sharedmock.MockInviteRepository
	audit         *sharedmock.MockAuditRepository
	notifications *sharedmock.MockNotificationRepository
	catalog       *sharedmock.MockCatalogRepository
	pricing       *sharedmock.MockPricingRepository
	blackouts     *sharedmock.MockBlackoutRepository
	templates     *sharedmock.MockTemplateRepository
}

// newUOWFixture runs every Within callback against a mocked Tx.
func newUOWFixture(t *testing.T) *uowFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &uowFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		discounts:     sharedmock.NewMockDiscountRepository(ctrl),
		invites:       sharedmock.NewMockInviteRepository(ctrl),
		audit:         sharedmock.NewMockAuditRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		catalog:       sharedmock.NewMockCatalogRepository(ctrl),
		pricing:       sharedmock.NewMockPricingRepository(ctrl),
		blackouts:     sharedmock.NewMockBlackoutRepository(ctrl),
		templates:     sharedmock.NewMockTemplateRepository(ctrl),
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Discounts().Return(f.discounts).AnyTimes()
	f.tx.EXPECT().Invites().Return(f.invites).AnyTimes()
	f.tx.EXPECT().Audit().Return(f.audit).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().Catalog().Return(f.catalog).AnyTimes()
	f.tx.EXPECT().Pricing().Return(f.pricing).AnyTimes()
	f.tx.EXPECT().Blackouts().Return(f.blackouts).AnyTimes()
	f.tx.EXPECT().Templates().Return(f.templates).AnyTimes()
	return f
}

type bookingWorld struct {
	location    *shared.LocationSnapshot
	vehicleType *catalog.VehicleType
	template    shared.TemplateSnapshot
}

func newBookingWorld() bookingWorld {
	return bookingWorld{
		location: &shared.LocationSnapshot{
			ID:       uuid.New(),
			Name:     "Halle Nord",
			Address:  "Industriestraße 5, 12345 Berlin",
			Category: catalog.CategoryIndoor,
		},
		vehicleType: &catalog.VehicleType{
			ID:        uuid.New(),
			MaxLength: decimal.RequireFromString("5.00"),
			Label:     "bis 5,00 m",
		},
		template: shared.TemplateSnapshot{
			ID:        uuid.New(),
			Name:      "Standardvertrag",
			ScopeType: contract.ScopeGlobal,
			Body:      "Mietvertrag für {{customer_first_name}} {{customer_last_name}}",
			Version:   1,
			IsActive:  true,
			CreatedAt: fixedNow.AddDate(0, -1, 0),
		},
	}
}

// stub wires the reads every successful booking creation performs.
func (w bookingWorld) stub(f *uowFixture) {
	f.reads.EXPECT().BlackoutsOverlapping(gomock.Any(), w.location.ID, gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.reads.EXPECT().LocationByID(gomock.Any(), w.location.ID).Return(w.location, nil).AnyTimes()
	f.reads.EXPECT().VehicleTypeByID(gomock.Any(), w.vehicleType.ID).Return(w.vehicleType, nil).AnyTimes()
	f.reads.EXPECT().PriceCandidates(gomock.Any(), gomock.Any()).Return(&shared.PriceCandidates{}, nil).AnyTimes()
	f.reads.EXPECT().BasePrice(gomock.Any()).Return(nil, nil).AnyTimes()
	f.reads.EXPECT().ActiveTemplates(gomock.Any(), w.location.ID, gomock.Any()).
		Return([]shared.TemplateSnapshot{w.template}, nil).AnyTimes()
}

func (w bookingWorld) input() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		LocationID:    w.location.ID,
		VehicleTypeID: w.vehicleType.ID,
		Category:      catalog.CategoryIndoor,
		Customer: booking.Customer{
			FirstName: "Erika",
			LastName:  "Mustermann",
			Address:   "Hauptstraße 1, 12345 Berlin",
			Email:     "erika@example.com",
		},
		StartDate:      time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC),
		BillingCycle:   "monthly",
		SignatureImage: testutil.SignatureImage,
		SignatureSVG:   testutil.ValidSignatureSVG(),
		Origin:         audit.Origin{IP: "192.0.2.10", UserAgent: "Mozilla/5.0"},
	}
}

func newBookingUseCase(f *uowFixture) commands.BookingCommands {
	return commands.NewBookingUseCase(
		f.uow,
		pricing.NewLayeredResolver(),
		shared.PricingSettings{FormulaEnabled: true, DefaultBasePrice: decimal.NewFromInt(100)},
		shared.NotifySettings{AdminEmail: "admin@example.com"},
		clock.NewMockClock(fixedNow),
		discardLogger(),
	)
}

func TestBookingUseCase_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success: persists booking, audit event and both emails", func(t *testing.T) {
		f := newUOWFixture(t)
		w := newBookingWorld()
		w.stub(f)

		var created *booking.Booking
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				created = b
				return nil
			})
		f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e audit.Event) error {
				assert.Equal(t, audit.ActionBookingCreated, e.Action)
				assert.Equal(t, audit.ActorCustomer, e.Actor)
				return nil
			})
		var topics []string
		f.notifications.EXPECT().CreateJob(gomock.Any(), shared.NotificationKindEmail, gomock.Any(), gomock.Any(), fixedNow).
			DoAndReturn(func(_ context.Context, _, topic string, payload []byte, _ time.Time) error {
				var msg shared.EmailMessage
				require.NoError(t, json.Unmarshal(payload, &msg))
				assert.NotEmpty(t, msg.Subject)
				topics = append(topics, topic)
				return nil
			}).Times(2)

		res, err := newBookingUseCase(f).CreateBooking(ctx, w.input())

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID(), res.BookingID)
		assert.False(t, res.Replayed)
		assert.False(t, res.DiscountRejected)
		assert.Equal(t, booking.StatusPendingOwnerSignature, created.Status())
		assert.Equal(t, pricing.SourceFormula, created.PriceSource())
		assert.True(t, decimal.NewFromInt(100).Equal(created.MonthlyPrice()), "got %s", created.MonthlyPrice())
		assert.Equal(t, w.template.ID, created.Contract().TemplateID)
		assert.Len(t, created.Contract().TermsHash, 64)
		assert.ElementsMatch(t, []string{shared.TopicBookingConfirmation, shared.TopicBookingAdminNotice}, topics)
	})

	t.Run("success: unknown discount code is dropped and flagged", func(t *testing.T) {
		f := newUOWFixture(t)
		w := newBookingWorld()
		w.stub(f)

		f.reads.EXPECT().DiscountByCode(gomock.Any(), "SOMMER").Return(nil, notFound())
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		in := w.input()
		in.DiscountCode = " sommer "
		res, err := newBookingUseCase(f).CreateBooking(ctx, in)

		require.NoError(t, err)
		assert.True(t, res.DiscountRejected)
	})

	t.Run("success: replays the stored booking for a known idempotency key", func(t *testing.T) {
		f := newUOWFixture(t)
		w := newBookingWorld()
		existing := builder.NewBookingBuilder().MustBuildDomain().Snapshot()
		existing.RequestHash = nil

		f.reads.EXPECT().BookingByIdempotencyKey(gomock.Any(), "key-1").Return(&existing, nil)

		in := w.input()
		key := "key-1"
		in.IdempotencyKey = &key
		res, err := newBookingUseCase(f).CreateBooking(ctx, in)

		require.NoError(t, err)
		assert.True(t, res.Replayed)
		assert.Equal(t, existing.ID, res.BookingID)
	})

	t.Run("error: idempotency key reused with another payload", func(t *testing.T) {
		f := newUOWFixture(t)
		w := newBookingWorld()
		existing := builder.NewBookingBuilder().MustBuildDomain().Snapshot()
		other := "0000"
		existing.RequestHash = &other

		f.reads.EXPECT().BookingByIdempotencyKey(gomock.Any(), "key-2").Return(&existing, nil)

		in := w.input()
		key := "key-2"
		in.IdempotencyKey = &key
		_, err := newBookingUseCase(f).CreateBooking(ctx, in)

		assert.True(t, errs.Is(err, errs.ErrIdempotencyConflict), "got %v", err)
	})

	t.Run("success: replay ignores discount code case and the default billing cycle", func(t *testing.T) {
		w := newBookingWorld()
		key := "key-3"

		first := newUOWFixture(t)
		w.stub(first)
		first.reads.EXPECT().BookingByIdempotencyKey(gomock.Any(), key).Return(nil, notFound())
		first.reads.EXPECT().DiscountByCode(gomock.Any(), "SOMMER").Return(nil, notFound())
		var stored booking.Snapshot
		first.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				stored = b.Snapshot()
				return nil
			})
		first.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		first.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		in := w.input()
		in.IdempotencyKey = &key
		in.DiscountCode = "sommer"
		in.BillingCycle = ""
		_, err := newBookingUseCase(first).CreateBooking(ctx, in)
		require.NoError(t, err)
		require.NotNil(t, stored.RequestHash)

		retry := newUOWFixture(t)
		retry.reads.EXPECT().BookingByIdempotencyKey(gomock.Any(), key).Return(&stored, nil)

		in = w.input()
		in.IdempotencyKey = &key
		in.DiscountCode = " SOMMER "
		in.BillingCycle = "monthly"
		res, err := newBookingUseCase(retry).CreateBooking(ctx, in)

		require.NoError(t, err)
		assert.True(t, res.Replayed)
		assert.Equal(t, stored.ID, res.BookingID)
	})

	t.Run("error: rejections before any write", func(t *testing.T) {
		testCases := []struct {
			name      string
			mutate    func(*commands.CreateBookingInput, bookingWorld, *uowFixture)
			expectErr error
		}{
			{
				name: "signature too simple",
				mutate: func(in *commands.CreateBookingInput, _ bookingWorld, _ *uowFixture) {
					in.SignatureSVG = testutil.SignatureSVG(3, 150)
				},
				expectErr: signature.ErrInvalidSignature,
			},
			{
				name: "end date not after start date",
				mutate: func(in *commands.CreateBookingInput, _ bookingWorld, _ *uowFixture) {
					in.EndDate = in.StartDate
				},
				expectErr: booking.ErrInvalidDateRange,
			},
			{
				name: "category differs from location",
				mutate: func(in *commands.CreateBookingInput, w bookingWorld, f *uowFixture) {
					in.Category = catalog.CategoryOutside
					w.stub(f)
				},
				expectErr: catalog.ErrInvalidCategory,
			},
			{
				name: "unknown location",
				mutate: func(in *commands.CreateBookingInput, _ bookingWorld, f *uowFixture) {
					in.LocationID = uuid.New()
					f.reads.EXPECT().BlackoutsOverlapping(gomock.Any(), in.LocationID, gomock.Any(), gomock.Any()).Return(nil, nil)
					f.reads.EXPECT().LocationByID(gomock.Any(), in.LocationID).Return(nil, notFound())
				},
				expectErr: catalog.ErrLocationNotFound,
			},
			{
				name: "deposit multiplier above ten",
				mutate: func(in *commands.CreateBookingInput, w bookingWorld, f *uowFixture) {
					m := decimal.NewFromInt(11)
					in.DepositMultiplier = &m
					w.stub(f)
				},
				expectErr: billing.ErrInvalidDepositMultiplier,
			},
			{
				name: "unknown billing cycle",
				mutate: func(in *commands.CreateBookingInput, w bookingWorld, f *uowFixture) {
					in.BillingCycle = "weekly"
					w.stub(f)
				},
				expectErr: booking.ErrInvalidBillingCycle,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newUOWFixture(t)
				w := newBookingWorld()
				in := w.input()
				tc.mutate(&in, w, f)

				_, err := newBookingUseCase(f).CreateBooking(ctx, in)

				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
			})
		}
	})

	t.Run("error: blackout overlap lists the blocked periods", func(t *testing.T) {
		f := newUOWFixture(t)
		w := newBookingWorld()
		in := w.input()
		reason := "Sanierung"
		blocked := blackout.Blackout{
			ID:         uuid.New(),
			LocationID: w.location.ID,
			StartDate:  in.StartDate.AddDate(0, 1, 0),
			EndDate:    in.StartDate.AddDate(0, 2, 0),
			Reason:     &reason,
		}
		f.reads.EXPECT().BlackoutsOverlapping(gomock.Any(), w.location.ID, in.StartDate, in.EndDate).
			Return([]blackout.Blackout{blocked}, nil)

		_, err := newBookingUseCase(f).CreateBooking(ctx, in)

		var conflict *blackout.ConflictError
		require.True(t, errors.As(err, &conflict), "got %v", err)
		assert.Len(t, conflict.Periods, 1)
		assert.Equal(t, blocked.ID, conflict.Periods[0].ID)
	})

	t.Run("error: discount exhausted by a concurrent booking rolls back", func(t *testing.T) {
		f := newUOWFixture(t)
		w := newBookingWorld()
		w.stub(f)

		limit := 1
		f.reads.EXPECT().DiscountByCode(gomock.Any(), "WELCOME10").Return(&shared.DiscountSnapshot{
			ID:         uuid.New(),
			Code:       "WELCOME10",
			Type:       billing.DiscountPercent,
			Value:      decimal.NewFromInt(10),
			UsageLimit: &limit,
			UsageCount: 0,
			IsActive:   true,
		}, nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.discounts.EXPECT().IncrementUsage(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		in := w.input()
		in.DiscountCode = "WELCOME10"
		_, err := newBookingUseCase(f).CreateBooking(ctx, in)

		assert.True(t, errs.Is(err, billing.ErrDiscountExhausted), "got %v", err)
	})

	t.Run("error: no active template", func(t *testing.T) {
		f := newUOWFixture(t)
		w := newBookingWorld()
		f.reads.EXPECT().BlackoutsOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.reads.EXPECT().LocationByID(gomock.Any(), w.location.ID).Return(w.location, nil)
		f.reads.EXPECT().VehicleTypeByID(gomock.Any(), w.vehicleType.ID).Return(w.vehicleType, nil)
		f.reads.EXPECT().PriceCandidates(gomock.Any(), gomock.Any()).Return(&shared.PriceCandidates{}, nil)
		f.reads.EXPECT().BasePrice(gomock.Any()).Return(nil, nil)
		f.reads.EXPECT().ActiveTemplates(gomock.Any(), w.location.ID, gomock.Any()).Return(nil, nil)

		_, err := newBookingUseCase(f).CreateBooking(ctx, w.input())

		assert.True(t, errs.Is(err, contract.ErrNoActiveTemplate), "got %v", err)
	})
}

func TestBookingUseCase_SignCustomer(t *testing.T) {
	ctx := context.Background()

	unsigned := func() booking.Snapshot {
		snap := builder.NewBookingBuilder().MustBuildDomain().Snapshot()
		snap.Status = booking.StatusPendingCustomerSignature
		snap.CustomerSign = nil
		return snap
	}

	t.Run("success: records the signature and moves to owner signature", func(t *testing.T) {
		f := newUOWFixture(t)
		snap := unsigned()
		f.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(&snap, nil)
		f.bookings.EXPECT().RecordCustomerSignature(gomock.Any(), snap.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, slot booking.SignatureSlot) (int64, error) {
				assert.Equal(t, "192.0.2.20", slot.IP)
				assert.Equal(t, fixedNow, slot.SignedAt)
				return 1, nil
			})
		f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		err := newBookingUseCase(f).SignCustomer(ctx, commands.SignInput{
			BookingID:      snap.ID,
			SignatureImage: testutil.SignatureImage,
			SignatureSVG:   testutil.ValidSignatureSVG(),
			Origin:         audit.Origin{IP: "192.0.2.20"},
		})

		require.NoError(t, err)
	})

	t.Run("error: booking already signed by the customer", func(t *testing.T) {
		f := newUOWFixture(t)
		snap := builder.NewBookingBuilder().MustBuildDomain().Snapshot()
		f.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(&snap, nil)

		err := newBookingUseCase(f).SignCustomer(ctx, commands.SignInput{
			BookingID:    snap.ID,
			SignatureSVG: testutil.ValidSignatureSVG(),
		})

		assert.True(t, errs.Is(err, booking.ErrInvalidTransition), "got %v", err)
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		f := newUOWFixture(t)
		id := uuid.New()
		f.reads.EXPECT().BookingByID(gomock.Any(), id).Return(nil, notFound())

		err := newBookingUseCase(f).SignCustomer(ctx, commands.SignInput{
			BookingID:    id,
			SignatureSVG: testutil.ValidSignatureSVG(),
		})

		assert.True(t, errs.Is(err, errs.ErrNotFound), "got %v", err)
	})
}

func TestBookingUseCase_SignOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("success: completes the booking and enqueues the contract email", func(t *testing.T) {
		f := newUOWFixture(t)
		w := newBookingWorld()
		snap := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.LocationID = w.location.ID
			b.VehicleTypeID = w.vehicleType.ID
			b.TemplateID = w.template.ID
		}).MustBuildDomain().Snapshot()

		f.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(&snap, nil)
		f.bookings.EXPECT().CompleteOwnerSignature(gomock.Any(), snap.ID, gomock.Any()).Return(int64(1), nil)
		f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		f.reads.EXPECT().TemplateByID(gomock.Any(), w.template.ID).Return(&w.template, nil)
		f.reads.EXPECT().LocationByID(gomock.Any(), w.location.ID).Return(w.location, nil)
		f.reads.EXPECT().VehicleTypeByID(gomock.Any(), w.vehicleType.ID).Return(w.vehicleType, nil)
		f.notifications.EXPECT().CreateJob(gomock.Any(), shared.NotificationKindEmail, shared.TopicContractCompleted, gomock.Any(), fixedNow).
			DoAndReturn(func(_ context.Context, _, _ string, payload []byte, _ time.Time) error {
				var msg shared.EmailMessage
				require.NoError(t, json.Unmarshal(payload, &msg))
				require.NotNil(t, msg.Attachment)
				assert.Contains(t, msg.Attachment.Content, "Erika Mustermann")
				return nil
			})

		err := newBookingUseCase(f).SignOwner(ctx, commands.SignInput{
			BookingID:      snap.ID,
			SignatureImage: testutil.SignatureImage,
			SignatureSVG:   testutil.ValidSignatureSVG(),
		})

		require.NoError(t, err)
	})

	t.Run("error: second owner signature is rejected", func(t *testing.T) {
		f := newUOWFixture(t)
		snap := builder.NewBookingBuilder().MustBuildDomain().Snapshot()
		snap.Status = booking.StatusCompleted
		snap.OwnerSign = &booking.SignatureSlot{SVG: testutil.ValidSignatureSVG(), SignedAt: fixedNow}
		f.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(&snap, nil)

		err := newBookingUseCase(f).SignOwner(ctx, commands.SignInput{
			BookingID:    snap.ID,
			SignatureSVG: testutil.ValidSignatureSVG(),
		})

		assert.True(t, errs.Is(err, booking.ErrAlreadyCompleted), "got %v", err)
	})

	t.Run("error: concurrent completion leaves no row to update", func(t *testing.T) {
		f := newUOWFixture(t)
		snap := builder.NewBookingBuilder().MustBuildDomain().Snapshot()
		f.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(&snap, nil)
		f.bookings.EXPECT().CompleteOwnerSignature(gomock.Any(), snap.ID, gomock.Any()).Return(int64(0), nil)

		err := newBookingUseCase(f).SignOwner(ctx, commands.SignInput{
			BookingID:    snap.ID,
			SignatureSVG: testutil.ValidSignatureSVG(),
		})

		assert.True(t, errs.Is(err, booking.ErrAlreadyCompleted), "got %v", err)
	})
}

func TestBookingUseCase_DeleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success: deletes and audits with customer name", func(t *testing.T) {
		f := newUOWFixture(t)
		snap := builder.NewBookingBuilder().MustBuildDomain().Snapshot()
		f.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(&snap, nil)
		f.bookings.EXPECT().Delete(gomock.Any(), snap.ID).Return(int64(1), nil)
		f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e audit.Event) error {
				assert.Equal(t, audit.ActionBookingDeleted, e.Action)
				assert.Equal(t, "Erika Mustermann", e.Metadata["customer"])
				return nil
			})

		require.NoError(t, newBookingUseCase(f).DeleteBooking(ctx, snap.ID, audit.Origin{}))
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		f := newUOWFixture(t)
		id := uuid.New()
		f.reads.EXPECT().BookingByID(gomock.Any(), id).Return(nil, notFound())

		err := newBookingUseCase(f).DeleteBooking(ctx, id, audit.Origin{})

		assert.True(t, errs.Is(err, booking.ErrBookingNotFound), "got %v", err)
	})
}
