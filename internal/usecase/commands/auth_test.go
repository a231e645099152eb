//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/pkg/jwt"
	"parkspace-booking/internal/pkg/password"
	"parkspace-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const adminToken = "correct-horse-battery"

func newAuthCommands(t *testing.T, f *uowFixture) (commands.AuthCommands, *jwt.Service) {
	t.Helper()
	hash, err := password.Hash(adminToken)
	require.NoError(t, err)
	svc := jwt.NewService("test-secret-key-for-jwt-signing", time.Hour)
	return commands.NewAuthCommands(f.uow, password.NewVerifier(hash), svc, clock.NewMockClock(fixedNow), discardLogger()), svc
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success: issues an admin token and audits the login", func(t *testing.T) {
		f := newUOWFixture(t)
		uc, svc := newAuthCommands(t, f)
		f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e audit.Event) error {
				assert.Equal(t, audit.ActionAdminLogin, e.Action)
				return nil
			})

		res, err := uc.Login(ctx, adminToken, audit.Origin{IP: "192.0.2.1"})

		require.NoError(t, err)
		claims, err := svc.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.AdminSubject, claims.Subject)
		assert.True(t, res.ExpiresAt.After(time.Now()))
	})

	t.Run("success: audit failure does not block the login", func(t *testing.T) {
		f := newUOWFixture(t)
		uc, _ := newAuthCommands(t, f)
		f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		res, err := uc.Login(ctx, adminToken, audit.Origin{})

		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
	})

	t.Run("error: wrong token", func(t *testing.T) {
		f := newUOWFixture(t)
		uc, _ := newAuthCommands(t, f)

		_, err := uc.Login(ctx, "wrong-token", audit.Origin{})

		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})
}
