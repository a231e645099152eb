package api

import (
	"net/http"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/pricing"
	reqdto "parkspace-booking/internal/handler/dto/request"
	resdto "parkspace-booking/internal/handler/dto/response"
	"parkspace-booking/internal/handler/httperr"
	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PublicHandler struct {
	catalogQueries      queries.CatalogQueries
	pricingQueries      queries.PricingQueries
	availabilityQueries queries.AvailabilityQueries
	inviteQueries       queries.InviteQueries
	clock               clock.Clock
}

func NewPublicHandler(
	catalogQueries queries.CatalogQueries,
	pricingQueries queries.PricingQueries,
	availabilityQueries queries.AvailabilityQueries,
	inviteQueries queries.InviteQueries,
	clock clock.Clock,
) *PublicHandler {
	return &PublicHandler{
		catalogQueries:      catalogQueries,
		pricingQueries:      pricingQueries,
		availabilityQueries: availabilityQueries,
		inviteQueries:       inviteQueries,
		clock:               clock,
	}
}

// @Summary List locations
// @Tags public
// @Produce json
// @Success 200 {array} resdto.PublicLocation
// @Router /locations [get]
func (h *PublicHandler) ListLocations(c *gin.Context) {
	views, err := h.catalogQueries.ListLocations(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	locations, err := resdto.NewPublicLocations(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// @Summary List vehicle types
// @Description Vehicle types ordered by maximum length
// @Tags public
// @Produce json
// @Success 200 {array} resdto.PublicVehicleType
// @Router /vehicle-types [get]
func (h *PublicHandler) ListVehicleTypes(c *gin.Context) {
	views, err := h.catalogQueries.ListVehicleTypes(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	types, err := resdto.NewPublicVehicleTypes(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// @Summary Price table
// @Description Monthly prices for every vehicle type and category at a location on the given date
// @Tags public
// @Produce json
// @Param locationId path string true "Location ID"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} queries.PriceTableEntry
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pricing/{locationId} [get]
func (h *PublicHandler) PriceTable(c *gin.Context) {
	locationID, ok := pathID(c, "locationId")
	if !ok {
		return
	}
	var query reqdto.PriceTableQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	date, err := dateOrToday(query.Date, h.clock.Today())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	entries, err := h.pricingQueries.PriceTable(c.Request.Context(), locationID, date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary Resolve a price
// @Description Monthly price for one location, vehicle type and category, with the layer it came from
// @Tags public
// @Produce json
// @Param location_id query string true "Location ID"
// @Param vehicle_type_id query string true "Vehicle type ID"
// @Param category query string true "Category"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} queries.PriceQuoteView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /pricing/resolve [get]
func (h *PublicHandler) ResolvePrice(c *gin.Context) {
	var query reqdto.ResolvePriceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	date, err := dateOrToday(query.Date, h.clock.Today())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	target := pricing.Target{
		LocationID:    uuid.MustParse(query.LocationID),
		VehicleTypeID: uuid.MustParse(query.VehicleTypeID),
		Category:      catalog.Category(query.Category),
	}
	quote, err := h.pricingQueries.Resolve(c.Request.Context(), target, date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// @Summary Availability
// @Description Blocked date ranges overlapping [from, to] at a location
// @Tags public
// @Produce json
// @Param location_id query string true "Location ID"
// @Param from query string true "From (YYYY-MM-DD)"
// @Param to query string true "To (YYYY-MM-DD)"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability [get]
func (h *PublicHandler) Availability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	from, err := caldate.Parse(query.From)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	to, err := caldate.Parse(query.To)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.availabilityQueries.Availability(c.Request.Context(), uuid.MustParse(query.LocationID), from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get invite
// @Description Prefill data of an unused, unexpired invite token
// @Tags public
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} queries.InviteView
// @Failure 404 {object} httperr.Response
// @Router /invite/{token} [get]
func (h *PublicHandler) GetInvite(c *gin.Context) {
	view, err := h.inviteQueries.GetInvite(c.Request.Context(), c.Param("token"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
