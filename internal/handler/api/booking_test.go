//go:build unit

package api_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/blackout"
	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/domain/signature"
	"parkspace-booking/internal/handler"
	"parkspace-booking/internal/handler/api"
	resdto "parkspace-booking/internal/handler/dto/response"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/usecase/commands"
	"parkspace-booking/internal/usecase/queries"
	"parkspace-booking/tests/common/builder"
	"parkspace-booking/tests/common/httptest"
	"parkspace-booking/tests/common/testutil"
	commandsmock "parkspace-booking/tests/mock/commands"
	queriesmock "parkspace-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	mockExport   *queriesmock.MockExportQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	s.Require().NoError(handler.RegisterValidators())
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockExport = queriesmock.NewMockExportQueries(s.mockCtrl)
	today := time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockExport, clock.NewMockClock(today))

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.POST("/bookings/:id/sign-customer", s.handler.SignCustomer)
	s.router.GET("/bookings/:id/contract", s.handler.Contract)
	s.router.POST("/admin/bookings/:id/sign-owner", s.handler.SignOwner)
	s.router.GET("/admin/bookings/export", s.handler.ExportBookings)
	s.router.DELETE("/admin/bookings/:id", s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ====================
// CreateBooking
// ====================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildRequest()
	bookingID := uuid.New()

	s.Run("success: returns 201 Created with the booking id", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateBookingInput) (*commands.CreateBookingResult, error) {
				s.Equal(b.LocationID, in.LocationID)
				s.Equal(b.StartDate, in.StartDate)
				s.Equal("erika@example.com", in.Customer.Email)
				s.Nil(in.IdempotencyKey)
				return &commands.CreateBookingResult{BookingID: bookingID}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bookingID, response.BookingID)
		s.False(response.Replayed)
	})

	s.Run("success: replay returns 200 OK", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{BookingID: bookingID, Replayed: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Replayed)
	})

	s.Run("success: Idempotency-Key header overrides the body key", func() {
		withKey := testutil.DtoMap(s.T(), reqBody, testutil.Field("idempotency_key", "body-key"))
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateBookingInput) (*commands.CreateBookingResult, error) {
				s.Require().NotNil(in.IdempotencyKey)
				s.Equal("header-key", *in.IdempotencyKey)
				return &commands.CreateBookingResult{BookingID: bookingID}, nil
			})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, withKey,
			map[string]string{"Idempotency-Key": " header-key "})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: location_id (required)", mutate: testutil.Field("location_id", nil)},
			{name: "missing field: customer_signature_svg (required)", mutate: testutil.Field("customer_signature_svg", nil)},
			{name: "invalid category", mutate: testutil.Field("category", "garage")},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "first_name boundary invalid (1 char)", mutate: testutil.Field("first_name", "E")},
			{name: "start_date not a calendar date", mutate: testutil.Field("start_date", "2024-02-30")},
			{name: "end_date wrong format", mutate: testutil.Field("end_date", "31.05.2025")},
			{name: "billing_cycle weekly", mutate: testutil.Field("billing_cycle", "weekly")},
			{name: "notice_period_days above 365", mutate: testutil.Field("notice_period_days", 366)},
			{name: "discount_code too long", mutate: testutil.Field("discount_code", strings.Repeat("X", 51))},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		conflict := blackout.NewConflictError([]blackout.Blackout{{
			StartDate: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
		}})
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedKind   string
		}{
			{name: "signature too simple", commandsError: signature.ErrTooSimple, expectedStatus: http.StatusUnprocessableEntity, expectedKind: "invalid_signature"},
			{name: "blackout conflict", commandsError: conflict, expectedStatus: http.StatusConflict, expectedKind: "date_conflict"},
			{name: "idempotency conflict", commandsError: errs.ErrIdempotencyConflict, expectedStatus: http.StatusConflict, expectedKind: "idempotency_conflict"},
			{name: "invalid date range", commandsError: booking.ErrInvalidDateRange, expectedStatus: http.StatusBadRequest, expectedKind: "validation"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedKind: "internal"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				body := httptest.DecodeErrorBody(s.T(), rec)
				s.Equal(tc.expectedStatus, rec.Code)
				s.Equal(tc.expectedKind, body.Error.Kind)
			})
		}
	})

	s.Run("error: blackout conflict lists the blocked periods", func() {
		conflict := blackout.NewConflictError([]blackout.Blackout{{
			StartDate: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
		}})
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, conflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		body := httptest.DecodeErrorBody(s.T(), rec)
		detail, ok := body.Detail.(map[string]any)
		s.Require().True(ok, "detail: %v", body.Detail)
		conflicts, ok := detail["conflicts"].([]any)
		s.Require().True(ok)
		s.Require().Len(conflicts, 1)
		s.Equal(map[string]any{"start_date": "2024-06-10", "end_date": "2024-06-12"}, conflicts[0])
	})
}

// ====================
// Signing
// ====================

func (s *BookingHandlerTestSuite) TestSign() {
	id := uuid.New()
	reqBody := map[string]any{"signature_image": testutil.SignatureImage, "signature_svg": testutil.ValidSignatureSVG()}

	s.Run("success: customer signature", func() {
		s.mockCommands.EXPECT().SignCustomer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.SignInput) error {
				s.Equal(id, in.BookingID)
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/sign-customer", reqBody, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Customer signature recorded", response.Message)
	})

	s.Run("error: owner signature on a completed booking", func() {
		s.mockCommands.EXPECT().SignOwner(gomock.Any(), gomock.Any()).Return(booking.ErrAlreadyCompleted)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+id.String()+"/sign-owner", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, booking.ErrAlreadyCompleted.Error())
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/sign-customer", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})

	s.Run("error: missing svg", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/sign-customer",
			map[string]any{"signature_image": testutil.SignatureImage}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ====================
// Contract, export and delete
// ====================

func (s *BookingHandlerTestSuite) TestContract() {
	id := uuid.New()

	s.Run("success: returns the rendered contract", func() {
		s.mockQueries.EXPECT().Contract(gomock.Any(), id).Return(&queries.ContractView{
			BookingID: id,
			TermsHash: strings.Repeat("a", 64),
			Body:      "Mietvertrag",
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String()+"/contract", nil, "")

		var response queries.ContractView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Mietvertrag", response.Body)
	})

	s.Run("error: unknown booking", func() {
		s.mockQueries.EXPECT().Contract(gomock.Any(), id).Return(nil, booking.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String()+"/contract", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestExportBookings() {
	s.Run("success: streams csv as an attachment", func() {
		s.mockExport.EXPECT().ExportBookings(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter queries.BookingFilter, w io.Writer, _ audit.Origin) error {
				s.Require().NotNil(filter.Status)
				s.Equal("completed", *filter.Status)
				_, err := w.Write([]byte("id;status\n"))
				return err
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/export?status=completed", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		s.Contains(rec.Header().Get("Content-Disposition"), "buchungen_2024-05-20.csv")
		s.Equal("id;status\n", rec.Body.String())
	})

	s.Run("error: unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/export?status=archived", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id, gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown booking", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id, gomock.Any()).Return(booking.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}
