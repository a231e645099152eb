//go:build unit

package invite_test

import (
	"testing"
	"time"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/invite"
	"parkspace-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("defaults to 72 hours", func(t *testing.T) {
		tok, err := invite.New(invite.Params{}, now)
		require.NoError(t, err)
		assert.Len(t, tok.Token, 64)
		assert.Equal(t, now.Add(72*time.Hour), tok.ExpiresAt)
		assert.True(t, tok.IsValid(now))
	})

	t.Run("tokens are unique", func(t *testing.T) {
		a, err := invite.New(invite.Params{}, now)
		require.NoError(t, err)
		b, err := invite.New(invite.Params{}, now)
		require.NoError(t, err)
		assert.NotEqual(t, a.Token, b.Token)
	})

	t.Run("expiry bounds", func(t *testing.T) {
		_, err := invite.New(invite.Params{ExpiresInHours: 8761}, now)
		assert.True(t, errs.Is(err, invite.ErrInvalidExpiry))
		_, err = invite.New(invite.Params{ExpiresInHours: -1}, now)
		assert.True(t, errs.Is(err, invite.ErrInvalidExpiry))
		_, err = invite.New(invite.Params{ExpiresInHours: 8760}, now)
		assert.NoError(t, err)
	})

	t.Run("category and email", func(t *testing.T) {
		bad := catalog.Category("roof")
		_, err := invite.New(invite.Params{Category: &bad}, now)
		assert.True(t, errs.Is(err, catalog.ErrInvalidCategory))

		email := "nope"
		_, err = invite.New(invite.Params{PrefillEmail: &email}, now)
		assert.True(t, errs.Is(err, invite.ErrInvalidEmail))
	})
}

func TestIsValid(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	tok, err := invite.New(invite.Params{ExpiresInHours: 1}, now)
	require.NoError(t, err)

	assert.True(t, tok.IsValid(now.Add(59*time.Minute)))
	assert.False(t, tok.IsValid(now.Add(time.Hour)))

	used := now
	tok.UsedAt = &used
	assert.False(t, tok.IsValid(now))
}
