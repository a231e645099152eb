package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("secret hashing failed")
	ErrComparisonFailed = errors.New("secret comparison failed")
	ErrEmptySecret      = errors.New("empty secret")
)

const DefaultCost = bcrypt.DefaultCost

// Hash produces the value stored in ADMIN_TOKEN_HASH.
func Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(secret), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

// Verifier checks presented secrets against one stored bcrypt hash.
type Verifier struct {
	hash []byte
}

func NewVerifier(hash string) *Verifier {
	return &Verifier{hash: []byte(hash)}
}

func (v *Verifier) Verify(secret string) error {
	if len(v.hash) == 0 || secret == "" {
		return ErrEmptySecret
	}

	err := bcrypt.CompareHashAndPassword(v.hash, []byte(secret))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
