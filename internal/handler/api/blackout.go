package api

import (
	"net/http"

	reqdto "parkspace-booking/internal/handler/dto/request"
	resdto "parkspace-booking/internal/handler/dto/response"
	"parkspace-booking/internal/handler/httperr"
	"parkspace-booking/internal/handler/middleware"
	"parkspace-booking/internal/usecase/commands"
	"parkspace-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BlackoutHandler struct {
	blackoutCommands    commands.BlackoutCommands
	availabilityQueries queries.AvailabilityQueries
}

func NewBlackoutHandler(blackoutCommands commands.BlackoutCommands, availabilityQueries queries.AvailabilityQueries) *BlackoutHandler {
	return &BlackoutHandler{
		blackoutCommands:    blackoutCommands,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List blackout periods
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param location_id query string false "Location ID"
// @Success 200 {array} queries.BlackoutView
// @Router /admin/blackouts [get]
func (h *BlackoutHandler) ListBlackouts(c *gin.Context) {
	var query reqdto.LocationFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	blackouts, err := h.availabilityQueries.ListBlackouts(c.Request.Context(), query.ID())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, blackouts)
}

// @Summary Create blackout period
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBlackoutRequest true "Blackout"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/blackouts [post]
func (h *BlackoutHandler) CreateBlackout(c *gin.Context) {
	var req reqdto.CreateBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	id, err := h.blackoutCommands.CreateBlackout(c.Request.Context(), in, middleware.Origin(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Delete blackout period
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Blackout ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /admin/blackouts/{id} [delete]
func (h *BlackoutHandler) DeleteBlackout(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.blackoutCommands.DeleteBlackout(c.Request.Context(), id, middleware.Origin(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
