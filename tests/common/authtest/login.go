//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"parkspace-booking/internal/handler/dto/request"
	"parkspace-booking/internal/pkg/cookie"
	"parkspace-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin exchanges AdminToken for a session and returns the cookie value.
func LoginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.LoginRequest{Token: AdminToken}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, accessCookie, "Admin token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Admin token cookie is empty")

	return accessCookie.Value
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/admin/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
