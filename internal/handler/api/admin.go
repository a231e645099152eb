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

type AdminHandler struct {
	inviteCommands commands.InviteCommands
	auditQueries   queries.AuditQueries
}

func NewAdminHandler(inviteCommands commands.InviteCommands, auditQueries queries.AuditQueries) *AdminHandler {
	return &AdminHandler{
		inviteCommands: inviteCommands,
		auditQueries:   auditQueries,
	}
}

// @Summary Create invite
// @Description Single-use booking link with optional prefilled fields
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInviteRequest true "Invite"
// @Success 201 {object} resdto.InviteResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/invites [post]
func (h *AdminHandler) CreateInvite(c *gin.Context) {
	var req reqdto.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	result, err := h.inviteCommands.CreateInvite(c.Request.Context(), req.ToParams(), middleware.Origin(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.NewInviteResponse(result))
}

// @Summary Audit log
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} queries.AuditPage
// @Router /admin/audit-log [get]
func (h *AdminHandler) AuditLog(c *gin.Context) {
	var query reqdto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	page, err := h.auditQueries.ListEvents(c.Request.Context(), queries.NewAuditPage(query.Limit, query.Offset))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
