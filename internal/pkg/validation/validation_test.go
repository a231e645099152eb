//go:build unit

package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Category string  `json:"category" validate:"required,category"`
	Date     string  `json:"start_date" validate:"required,caldate"`
	Code     *string `json:"code" validate:"omitempty,alnum_code"`
	Email    string  `json:"email" validate:"required,email"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestCustomTags(t *testing.T) {
	v := newValidator(t)
	code := "SUMMER24"

	t.Run("valid struct passes", func(t *testing.T) {
		err := v.Struct(sample{Category: "covered", Date: "2025-03-01", Code: &code, Email: "a@example.com"})
		assert.NoError(t, err)
	})

	t.Run("nil optional code is skipped", func(t *testing.T) {
		err := v.Struct(sample{Category: "indoor", Date: "2025-03-01", Email: "a@example.com"})
		assert.NoError(t, err)
	})

	t.Run("invalid values are reported by json name", func(t *testing.T) {
		bad := "x!"
		err := v.Struct(sample{Category: "garage", Date: "01.03.2025", Code: &bad, Email: "nope"})
		require.Error(t, err)

		fields := FieldErrors(err)
		assert.Equal(t, map[string]string{
			"category":   "must be outside, covered or indoor",
			"start_date": "must be a date in YYYY-MM-DD format",
			"code":       "must be 2-50 alphanumeric characters",
			"email":      "must be a valid email address",
		}, fields)
	})
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
