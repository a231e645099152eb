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

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List companies
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CompanyView
// @Router /admin/companies [get]
func (h *CatalogHandler) ListCompanies(c *gin.Context) {
	companies, err := h.catalogQueries.ListCompanies(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// @Summary Get company
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} queries.CompanyView
// @Failure 404 {object} httperr.Response
// @Router /admin/companies/{id} [get]
func (h *CatalogHandler) GetCompany(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	company, err := h.catalogQueries.GetCompany(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// @Summary Create company
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCompanyRequest true "Company"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/companies [post]
func (h *CatalogHandler) CreateCompany(c *gin.Context) {
	var req reqdto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	id, err := h.catalogCommands.CreateCompany(c.Request.Context(), req.ToInput(), middleware.Origin(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update company
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param request body reqdto.UpdateCompanyRequest true "Changed fields"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/companies/{id} [put]
func (h *CatalogHandler) UpdateCompany(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	if err := h.catalogCommands.UpdateCompany(c.Request.Context(), id, req.ToUpdate(), middleware.Origin(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete company
// @Description Fails with 409 while locations reference the company unless force is set, which detaches them
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param force query bool false "Detach locations"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/companies/{id} [delete]
func (h *CatalogHandler) DeleteCompany(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var query reqdto.ForceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	if err := h.catalogCommands.DeleteCompany(c.Request.Context(), id, query.Force, middleware.Origin(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List locations
// @Description Admin view including access codes
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.LocationView
// @Router /admin/locations [get]
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations, err := h.catalogQueries.ListLocations(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// @Summary Get location
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} queries.LocationView
// @Failure 404 {object} httperr.Response
// @Router /admin/locations/{id} [get]
func (h *CatalogHandler) GetLocation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	location, err := h.catalogQueries.GetLocation(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// @Summary Create location
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLocationRequest true "Location"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/locations [post]
func (h *CatalogHandler) CreateLocation(c *gin.Context) {
	var req reqdto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	id, err := h.catalogCommands.CreateLocation(c.Request.Context(), req.ToInput(), middleware.Origin(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update location
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param request body reqdto.UpdateLocationRequest true "Changed fields"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/locations/{id} [put]
func (h *CatalogHandler) UpdateLocation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	if err := h.catalogCommands.UpdateLocation(c.Request.Context(), id, req.ToUpdate(), middleware.Origin(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete location
// @Description Fails with 409 while bookings reference the location unless force is set
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param force query bool false "Delete despite bookings"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/locations/{id} [delete]
func (h *CatalogHandler) DeleteLocation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var query reqdto.ForceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	if err := h.catalogCommands.DeleteLocation(c.Request.Context(), id, query.Force, middleware.Origin(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
