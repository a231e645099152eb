package api

import (
	"net/http"
	"time"

	reqdto "parkspace-booking/internal/handler/dto/request"
	resdto "parkspace-booking/internal/handler/dto/response"
	"parkspace-booking/internal/handler/httperr"
	"parkspace-booking/internal/handler/middleware"
	"parkspace-booking/internal/pkg/config"
	"parkspace-booking/internal/pkg/cookie"
	"parkspace-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cookieConfig config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cookieConfig: cfg.Cookie,
	}
}

// @Summary Admin login
// @Description Exchange the admin access token for a JWT; the JWT is also set as an HttpOnly cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Token, middleware.Origin(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetAdminToken(c, h.cookieConfig, result.AccessToken, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
	})
}

// @Summary Admin logout
// @Description Clear the admin cookie
// @Tags admin
// @Success 204
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminToken(c, h.cookieConfig)
	c.Status(http.StatusNoContent)
}
