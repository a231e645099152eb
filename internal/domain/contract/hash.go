package contract

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// TermsHash seals a booking to the template content it was created against.
// A missing company is hashed as the literal "null".
func TermsHash(body string, version int, companyID *uuid.UUID, locationID uuid.UUID) string {
	company := "null"
	if companyID != nil {
		company = companyID.String()
	}
	input := strings.Join([]string{body, strconv.Itoa(version), company, locationID.String()}, "|")
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
