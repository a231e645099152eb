package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	reqdto "parkspace-booking/internal/handler/dto/request"
	resdto "parkspace-booking/internal/handler/dto/response"
	"parkspace-booking/internal/handler/httperr"
	"parkspace-booking/internal/handler/middleware"
	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/usecase/commands"
	"parkspace-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	exportQueries   queries.ExportQueries
	clock           clock.Clock
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	exportQueries queries.ExportQueries,
	clock clock.Clock,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		exportQueries:   exportQueries,
		clock:           clock,
	}
}

// @Summary Create booking
// @Description Create a booking signed by the customer. Repeating a request with the same idempotency key returns the original booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key (overrides idempotency_key in the body)"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Success 200 {object} resdto.CreateBookingResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	in, err := req.ToInput(c.GetHeader(reqdto.IdempotencyKeyHeader), middleware.Origin(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.NewCreateBookingResponse(result))
}

// @Summary Sign as customer
// @Description Legacy flow for bookings created without a customer signature
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.SignRequest true "Signature"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/sign-customer [post]
func (h *BookingHandler) SignCustomer(c *gin.Context) {
	h.sign(c, h.bookingCommands.SignCustomer, "Customer signature recorded")
}

// @Summary Countersign a booking
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SignRequest true "Signature"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/bookings/{id}/sign-owner [post]
func (h *BookingHandler) SignOwner(c *gin.Context) {
	h.sign(c, h.bookingCommands.SignOwner, "Booking completed")
}

func (h *BookingHandler) sign(c *gin.Context, signFn func(ctx context.Context, in commands.SignInput) error, message string) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	if err := signFn(c.Request.Context(), req.ToInput(id, middleware.Origin(c))); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: message})
}

// @Summary Contract
// @Description Rendered contract text of a booking with its terms hash
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.ContractView
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/contract [get]
func (h *BookingHandler) Contract(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.bookingQueries.Contract(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardView
// @Router /admin/dashboard [get]
func (h *BookingHandler) Dashboard(c *gin.Context) {
	view, err := h.bookingQueries.Dashboard(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status"
// @Param location_id query string false "Location ID"
// @Param from query string false "Bookings ending on or after (YYYY-MM-DD)"
// @Param to query string false "Bookings starting on or before (YYYY-MM-DD)"
// @Success 200 {array} queries.BookingListItem
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter, ok := bindBookingFilter(c)
	if !ok {
		return
	}
	items, err := h.bookingQueries.ListBookings(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.bookingQueries.GetBooking(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Export bookings
// @Description CSV export with the same filters as the list
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Param status query string false "Status"
// @Param location_id query string false "Location ID"
// @Param from query string false "From (YYYY-MM-DD)"
// @Param to query string false "To (YYYY-MM-DD)"
// @Success 200 {string} string "CSV"
// @Router /admin/bookings/export [get]
func (h *BookingHandler) ExportBookings(c *gin.Context) {
	filter, ok := bindBookingFilter(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.exportQueries.ExportBookings(c.Request.Context(), filter, &buf, middleware.Origin(c)); err != nil {
		httperr.Abort(c, err)
		return
	}

	filename := fmt.Sprintf("buchungen_%s.csv", caldate.Format(h.clock.Today()))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// @Summary Delete booking
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.bookingCommands.DeleteBooking(c.Request.Context(), id, middleware.Origin(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindBookingFilter(c *gin.Context) (queries.BookingFilter, bool) {
	var query reqdto.BookingFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return queries.BookingFilter{}, false
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortBinding(c, err)
		return queries.BookingFilter{}, false
	}
	return filter, true
}
