//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"parkspace-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("issued token validates", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		token, expiresAt, err := svc.GenerateAdminToken()
		require.NoError(t, err)
		assert.True(t, expiresAt.After(time.Now()))

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.AdminSubject, claims.Subject)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)
		token, _, err := svc.GenerateAdminToken()
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("foreign signature", func(t *testing.T) {
		token, _, err := jwt.NewService("other", time.Hour).GenerateAdminToken()
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
