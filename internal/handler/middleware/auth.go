package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/handler/httperr"
	"parkspace-booking/internal/pkg/cookie"
	"parkspace-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin accepts the admin token from the session cookie or a Bearer header.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminToken(c)
		if token == "" {
			token = bearerToken(c)
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrNotAdmin, "Access token required", nil)
			return
		}

		if err := m.tokenValidator.ValidateToken(token); err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxActorKey, audit.ActorAdmin)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetActor returns the authenticated actor, empty for public requests.
func GetActor(c *gin.Context) string {
	if actor, exists := c.Get(ctxActorKey); exists {
		if s, ok := actor.(string); ok {
			return s
		}
	}
	return ""
}

// Origin captures who sent the request for audit records.
func Origin(c *gin.Context) audit.Origin {
	return audit.Origin{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
