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

type PricingHandler struct {
	pricingCommands commands.PricingCommands
	pricingQueries  queries.PricingQueries
}

func NewPricingHandler(pricingCommands commands.PricingCommands, pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{
		pricingCommands: pricingCommands,
		pricingQueries:  pricingQueries,
	}
}

// @Summary Pricing configuration
// @Description Base price, formula constants and the formula price table
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.PricingConfigView
// @Router /admin/pricing/config [get]
func (h *PricingHandler) Config(c *gin.Context) {
	view, err := h.pricingQueries.Config(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Set base price
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.BasePriceRequest true "Base price"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /admin/pricing/config [put]
func (h *PricingHandler) SetBasePrice(c *gin.Context) {
	var req reqdto.BasePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	if err := h.pricingCommands.SetBasePrice(c.Request.Context(), *req.BasePrice, middleware.Origin(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List pricing rules
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param location_id query string false "Location ID"
// @Success 200 {array} queries.PricingRuleView
// @Router /admin/pricing/rules [get]
func (h *PricingHandler) ListRules(c *gin.Context) {
	var query reqdto.LocationFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	rules, err := h.pricingQueries.ListRules(c.Request.Context(), query.ID())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// @Summary Create pricing rule
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRuleRequest true "Rule"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/pricing/rules [post]
func (h *PricingHandler) CreateRule(c *gin.Context) {
	var req reqdto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	id, err := h.pricingCommands.CreateRule(c.Request.Context(), in, middleware.Origin(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Delete pricing rule
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /admin/pricing/rules/{id} [delete]
func (h *PricingHandler) DeleteRule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.pricingCommands.DeleteRule(c.Request.Context(), id, middleware.Origin(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List price overrides
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param location_id query string false "Location ID"
// @Success 200 {array} queries.PricingOverrideView
// @Router /admin/pricing/overrides [get]
func (h *PricingHandler) ListOverrides(c *gin.Context) {
	var query reqdto.LocationFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	overrides, err := h.pricingQueries.ListOverrides(c.Request.Context(), query.ID())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, overrides)
}

// @Summary Create price override
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOverrideRequest true "Override"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/pricing/overrides [post]
func (h *PricingHandler) CreateOverride(c *gin.Context) {
	var req reqdto.CreateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	id, err := h.pricingCommands.CreateOverride(c.Request.Context(), in, middleware.Origin(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Delete price override
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Override ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /admin/pricing/overrides/{id} [delete]
func (h *PricingHandler) DeleteOverride(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.pricingCommands.DeleteOverride(c.Request.Context(), id, middleware.Origin(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
