//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"parkspace-booking/internal/pkg/config"
	"parkspace-booking/internal/pkg/jwt"
	"parkspace-booking/internal/pkg/password"

	"github.com/stretchr/testify/require"
)

// AdminToken is the plain admin access token test suites log in with.
const AdminToken = "e2e-admin-access-token"

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, _, err := jwt.NewService(h.cfg.Secret, duration).GenerateAdminToken()
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, 1*time.Millisecond).GenerateAdminToken()
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// AdminTokenHash hashes AdminToken for config.AdminConfig.TokenHash.
func AdminTokenHash(t *testing.T) string {
	t.Helper()
	hash, err := password.Hash(AdminToken)
	require.NoError(t, err)
	return hash
}
