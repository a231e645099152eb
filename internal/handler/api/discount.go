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

type DiscountHandler struct {
	discountCommands commands.DiscountCommands
	discountQueries  queries.DiscountQueries
}

func NewDiscountHandler(discountCommands commands.DiscountCommands, discountQueries queries.DiscountQueries) *DiscountHandler {
	return &DiscountHandler{
		discountCommands: discountCommands,
		discountQueries:  discountQueries,
	}
}

// @Summary List discount codes
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.DiscountView
// @Router /admin/discounts [get]
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	discounts, err := h.discountQueries.ListDiscounts(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, discounts)
}

// @Summary Create discount code
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDiscountRequest true "Discount"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/discounts [post]
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	var req reqdto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	id, err := h.discountCommands.CreateDiscount(c.Request.Context(), in, middleware.Origin(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Toggle discount code
// @Description Flips the active flag
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 200 {object} resdto.ToggleResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/discounts/{id}/toggle [patch]
func (h *DiscountHandler) ToggleDiscount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	active, err := h.discountCommands.ToggleDiscount(c.Request.Context(), id, middleware.Origin(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ToggleResponse{ID: id, IsActive: active})
}

// @Summary Delete discount code
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /admin/discounts/{id} [delete]
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.discountCommands.DeleteDiscount(c.Request.Context(), id, middleware.Origin(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
