package invite

import (
	"crypto/rand"
	"encoding/hex"
	"net/mail"
	"time"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	TokenBytes         = 32
	DefaultExpiryHours = 72
	MaxExpiryHours     = 8760
)

var (
	ErrInvalidInvite = errs.NewKind("invite token is invalid, used or expired", errs.ErrNotFound)
	ErrInvalidExpiry = errs.New("expiry must be between 1 and 8760 hours")
	ErrInvalidEmail  = errs.New("invalid prefill email")
)

// Token is a single-use deep link into a pre-filled booking form.
type Token struct {
	Token         string
	LocationID    *uuid.UUID
	VehicleTypeID *uuid.UUID
	Category      *catalog.Category
	PrefillEmail  *string
	ExpiresAt     time.Time
	UsedAt        *time.Time
	BookingID     *uuid.UUID
	CreatedAt     time.Time
}

type Params struct {
	LocationID     *uuid.UUID
	VehicleTypeID  *uuid.UUID
	Category       *catalog.Category
	PrefillEmail   *string
	ExpiresInHours int
}

func New(p Params, now time.Time) (*Token, error) {
	hours := p.ExpiresInHours
	if hours == 0 {
		hours = DefaultExpiryHours
	}
	if hours < 1 || hours > MaxExpiryHours {
		return nil, ErrInvalidExpiry
	}
	if p.Category != nil && !p.Category.IsValid() {
		return nil, catalog.ErrInvalidCategory
	}
	if p.PrefillEmail != nil && *p.PrefillEmail != "" {
		if _, err := mail.ParseAddress(*p.PrefillEmail); err != nil {
			return nil, ErrInvalidEmail
		}
	}
	token, err := generate()
	if err != nil {
		return nil, err
	}
	return &Token{
		Token:         token,
		LocationID:    p.LocationID,
		VehicleTypeID: p.VehicleTypeID,
		Category:      p.Category,
		PrefillEmail:  p.PrefillEmail,
		ExpiresAt:     now.Add(time.Duration(hours) * time.Hour),
		CreatedAt:     now,
	}, nil
}

func generate() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "generate invite token")
	}
	return hex.EncodeToString(buf), nil
}

// IsValid holds while the token is unused and not yet expired.
func (t *Token) IsValid(now time.Time) bool {
	return t.UsedAt == nil && t.ExpiresAt.After(now)
}
