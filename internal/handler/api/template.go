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

type TemplateHandler struct {
	templateCommands commands.TemplateCommands
	templateQueries  queries.TemplateQueries
}

func NewTemplateHandler(templateCommands commands.TemplateCommands, templateQueries queries.TemplateQueries) *TemplateHandler {
	return &TemplateHandler{
		templateCommands: templateCommands,
		templateQueries:  templateQueries,
	}
}

// @Summary List contract templates
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.TemplateView
// @Router /admin/templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateQueries.ListTemplates(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// @Summary Create contract template
// @Description Creates the next version for the scope and makes it the active one
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTemplateRequest true "Template"
// @Success 201 {object} resdto.TemplateCreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req reqdto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	result, err := h.templateCommands.CreateTemplate(c.Request.Context(), req.ToInput(), middleware.Origin(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.TemplateCreatedResponse{ID: result.TemplateID, Version: result.Version})
}

// @Summary Activate contract template
// @Description Makes this version the only active one in its scope
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /admin/templates/{id}/activate [post]
func (h *TemplateHandler) ActivateTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.templateCommands.ActivateTemplate(c.Request.Context(), id, middleware.Origin(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
