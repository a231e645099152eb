//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/handler/dto/response"
	"parkspace-booking/internal/pkg/cookie"
	"parkspace-booking/internal/usecase/queries"
	"parkspace-booking/tests/common/authtest"
	"parkspace-booking/tests/common/builder"
	"parkspace-booking/tests/common/dbtest"
	"parkspace-booking/tests/common/httptest"
	"parkspace-booking/tests/common/testutil"
	"parkspace-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL  = "/api/bookings"
	adminBooking = "/api/admin/bookings/"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type world struct {
	locationID    uuid.UUID
	vehicleTypeID uuid.UUID
}

func (s *BookingSuite) seedWorld(t *testing.T) world {
	t.Helper()
	companyID := dbtest.CreateTestCompany(t, s.DB, "Stellplatz Nord GmbH")
	return world{
		locationID:    dbtest.CreateTestLocation(t, s.DB, &companyID, "Halle Nord", string(catalog.CategoryIndoor)),
		vehicleTypeID: dbtest.VehicleTypeID(t, s.DB, "5.50"),
	}
}

func (s *BookingSuite) newBooking(w world) *builder.BookingBuilder {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.LocationID = w.locationID
		b.VehicleTypeID = w.vehicleTypeID
		b.StartDate = time.Date(2030, time.March, 1, 0, 0, 0, 0, time.UTC)
		b.EndDate = time.Date(2031, time.February, 28, 0, 0, 0, 0, time.UTC)
	})
}

func (s *BookingSuite) create(t *testing.T, body any, headers map[string]string) (int, response.CreateBookingResponse) {
	t.Helper()
	rec := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, headers)
	var created response.CreateBookingResponse
	if rec.Code < 300 {
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &created))
	}
	return rec.Code, created
}

// =============================================================================
// TestCreateBooking - public booking flow
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking is priced by formula and the contract renders", func() {
		t := s.T()
		w := s.seedWorld(t)

		code, created := s.create(t, s.newBooking(w).BuildRequest(), nil)
		require.Equal(t, http.StatusCreated, code)
		require.NotEqual(t, uuid.Nil, created.BookingID)

		token := authtest.LoginAdmin(t, s.Router)
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, adminBooking+created.BookingID.String(), nil, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var view queries.BookingView
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &view))

		expected := queries.BookingListItem{
			FirstName:    "Erika",
			LastName:     "Mustermann",
			Email:        "erika@example.com",
			LocationID:   w.locationID,
			LocationName: "Halle Nord",
			Category:     "indoor",
			StartDate:    "2030-03-01",
			EndDate:      "2031-02-28",
			Status:       "pending_owner_signature",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(queries.BookingListItem{}, "ID", "Address", "VehicleLabel", "MonthlyPrice", "Caution", "TotalAmount", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, view.BookingListItem, opts...); diff != "" {
			t.Errorf("Booking mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, "110.00", view.MonthlyPrice.StringFixed(2))
		require.Equal(t, "formula", view.PriceSource)

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings/"+created.BookingID.String()+"/contract", nil, "")
		require.Equal(t, http.StatusOK, cw.Code)
		var contract queries.ContractView
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &contract))
		require.Len(t, contract.TermsHash, 64)
		require.Contains(t, contract.Body, "Erika Mustermann")
		require.Equal(t, view.TermsHash, contract.TermsHash)

		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "notification_jobs", "status = 'queued'"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "audit_log", "action = 'booking_created'"))
	})

	s.Run("Normal case: every started half metre beyond 5 m adds a surcharge step", func() {
		t := s.T()
		w := s.seedWorld(t)
		longVehicle := dbtest.VehicleTypeID(t, s.DB, "6.00")

		path := fmt.Sprintf("/api/pricing/resolve?location_id=%s&vehicle_type_id=%s&category=indoor&date=2030-03-01", w.locationID, longVehicle)
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var quote queries.PriceQuoteView
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &quote))
		require.Equal(t, "formula", quote.Source)
		require.Equal(t, "120.00", quote.Price.StringFixed(2))
	})

	s.Run("Normal case: unknown discount code is ignored and flagged", func() {
		t := s.T()
		w := s.seedWorld(t)

		code, created := s.create(t, s.newBooking(w).With(func(b *builder.BookingBuilder) { b.DiscountCode = "NOPE" }).BuildRequest(), nil)

		require.Equal(t, http.StatusCreated, code)
		require.True(t, created.DiscountRejected)
	})

	s.Run("Error case: blackout overlap lists the conflicts", func() {
		t := s.T()
		w := s.seedWorld(t)
		dbtest.CreateTestBlackout(t, s.DB, w.locationID, "2030-02-20", "2030-03-01")

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.newBooking(w).BuildRequest(), "")

		require.Equal(t, http.StatusConflict, rec.Code)
		body := httptest.DecodeErrorBody(t, rec)
		require.Equal(t, "date_conflict", body.Error.Kind)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "bookings", ""))
	})

	s.Run("Error case: scribble signature is rejected", func() {
		t := s.T()
		w := s.seedWorld(t)
		req := s.newBooking(w).With(func(b *builder.BookingBuilder) { b.SignatureSVG = testutil.SignatureSVG(3, 150) }).BuildRequest()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, "invalid_signature", httptest.DecodeErrorBody(t, rec).Error.Kind)
	})

	s.Run("Error case: category must match the location", func() {
		t := s.T()
		w := s.seedWorld(t)
		req := s.newBooking(w).With(func(b *builder.BookingBuilder) { b.Category = catalog.CategoryOutside }).BuildRequest()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, "invalid_category", httptest.DecodeErrorBody(t, rec).Error.Kind)
	})
}

// =============================================================================
// TestIdempotency - retried submissions
// =============================================================================

func (s *BookingSuite) TestIdempotency() {
	s.Run("Normal case: same key and payload replays the booking", func() {
		t := s.T()
		w := s.seedWorld(t)
		req := s.newBooking(w).BuildRequest()
		headers := map[string]string{"Idempotency-Key": "retry-123"}

		code1, first := s.create(t, req, headers)
		code2, second := s.create(t, req, headers)

		require.Equal(t, http.StatusCreated, code1)
		require.Equal(t, http.StatusOK, code2)
		require.True(t, second.Replayed)
		require.Equal(t, first.BookingID, second.BookingID)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", ""))
	})

	s.Run("Error case: same key with a different payload conflicts", func() {
		t := s.T()
		w := s.seedWorld(t)
		headers := map[string]string{"Idempotency-Key": "retry-456"}

		code1, _ := s.create(t, s.newBooking(w).BuildRequest(), headers)
		require.Equal(t, http.StatusCreated, code1)

		other := s.newBooking(w).With(func(b *builder.BookingBuilder) { b.FirstName = "Max" }).BuildRequest()
		rec := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, other, headers)

		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, "idempotency_conflict", httptest.DecodeErrorBody(t, rec).Error.Kind)
	})

	s.Run("Concurrency: parallel retries create one booking", func() {
		t := s.T()
		w := s.seedWorld(t)
		req := s.newBooking(w).BuildRequest()
		headers := map[string]string{"Idempotency-Key": "burst-789"}

		const n = 5
		ids := make([]uuid.UUID, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, req, headers)
				var created response.CreateBookingResponse
				if rec.Code < 300 {
					_ = httptest.DecodeResponseBody(t, rec.Body, &created)
				}
				ids[i] = created.BookingID
			}()
		}
		wg.Wait()

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", ""))
		for _, id := range ids {
			require.Equal(t, ids[0], id)
		}
	})
}

// =============================================================================
// TestDiscountUsage - usage limit under concurrency
// =============================================================================

func (s *BookingSuite) TestDiscountUsage() {
	s.Run("Concurrency: a single-use code is redeemed once", func() {
		t := s.T()
		w := s.seedWorld(t)
		limit := 1
		dbtest.CreateTestDiscount(t, s.DB, "ONCE", "percent", "10", &limit)

		const n = 5
		codes := make([]int, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := s.newBooking(w).With(func(b *builder.BookingBuilder) {
					b.DiscountCode = "once"
					b.Email = uuid.NewString()[:8] + "@example.com"
				}).BuildRequest()
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
				codes[i] = rec.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				created++
				continue
			}
			require.Equal(t, http.StatusConflict, c)
		}
		require.Equal(t, 1, created)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "discounts", "code = 'ONCE' AND usage_count = 1"))
	})
}

// =============================================================================
// TestSignOwner - countersignature and contract mail
// =============================================================================

func (s *BookingSuite) TestSignOwner() {
	signBody := map[string]any{"signature_image": testutil.SignatureImage, "signature_svg": testutil.ValidSignatureSVG()}

	s.Run("Normal case: owner signature completes the booking once", func() {
		t := s.T()
		w := s.seedWorld(t)
		_, created := s.create(t, s.newBooking(w).BuildRequest(), nil)
		token := authtest.LoginAdmin(t, s.Router)
		url := adminBooking + created.BookingID.String() + "/sign-owner"

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, url, signBody, token)
		require.Equal(t, http.StatusOK, first.Code, first.Body.String())

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, url, signBody, token)
		require.Equal(t, http.StatusConflict, second.Code)
		require.Equal(t, "already_completed", httptest.DecodeErrorBody(t, second).Error.Kind)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "status = 'completed' AND owner_signature_date IS NOT NULL"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", "topic = 'contract_completed'"))
	})

	s.Run("Normal case: dispatcher delivers queued mails", func() {
		t := s.T()
		w := s.seedWorld(t)
		_, created := s.create(t, s.newBooking(w).BuildRequest(), nil)
		require.NotEqual(t, uuid.Nil, created.BookingID)

		result, err := s.Dispatcher.DispatchDue(context.Background())

		require.NoError(t, err)
		require.Equal(t, 2, result.Claimed)
		require.Equal(t, 2, result.Sent)
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "notification_jobs", "status = 'sent'"))
	})

	s.Run("Auth test - Unauthorized without admin session", func() {
		t := s.T()
		w := s.seedWorld(t)
		_, created := s.create(t, s.newBooking(w).BuildRequest(), nil)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, adminBooking+created.BookingID.String()+"/sign-owner", signBody, "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	s.Run("Auth test - cookie session is accepted", func() {
		t := s.T()
		w := s.seedWorld(t)
		_, created := s.create(t, s.newBooking(w).BuildRequest(), nil)
		token := authtest.LoginAdmin(t, s.Router)
		cookies := []*http.Cookie{{Name: cookie.AdminTokenCookieName, Value: token}}

		rec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, adminBooking+created.BookingID.String(), nil, cookies, "")

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
