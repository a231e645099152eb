// Package validation registers the custom binding tags used by the request DTOs
// and turns validator failures into per-field messages.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/pkg/caldate"
	"parkspace-booking/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const (
	TagCategory  = "category"
	TagCalDate   = "caldate"
	TagAlnumCode = "alnum_code"
)

var alnumCode = regexp.MustCompile(`^[A-Za-z0-9]{2,50}$`)

// Register installs the custom tags on v and reports fields by their json name.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)

	custom := map[string]validator.Func{
		TagCategory:  validateCategory,
		TagCalDate:   validateCalDate,
		TagAlnumCode: validateAlnumCode,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrapf(err, "failed to register %s validation", tag)
		}
	}
	return nil
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		name = strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
	}
	if name == "" {
		return f.Name
	}
	return name
}

func validateCategory(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl)
	return ok && catalog.Category(s).IsValid()
}

func validateCalDate(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl)
	if !ok {
		return false
	}
	_, err := caldate.Parse(s)
	return err == nil
}

func validateAlnumCode(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl)
	return ok && alnumCode.MatchString(strings.TrimSpace(s))
}

// stringValue dereferences pointer fields.
func stringValue(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return "", false
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return "", false
	}
	return field.String(), true
}

// FieldErrors maps each failed field to a readable message. It returns nil
// when err is not a validation failure.
func FieldErrors(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errs.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case TagCategory:
		return "must be outside, covered or indoor"
	case TagCalDate:
		return "must be a date in YYYY-MM-DD format"
	case TagAlnumCode:
		return "must be 2-50 alphanumeric characters"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
