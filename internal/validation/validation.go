// Package validation wraps go-playground/validator with the request
// formats this API enforces: E.164 phone numbers, category titles and
// slugs, person names, and product image URLs.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// E.164: plus sign, a 1-9 country-code digit, then 1 to 14 digits.
	phonePattern    = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	titlePattern    = regexp.MustCompile(`^[A-Z][a-z]*$`)
	slugPattern     = regexp.MustCompile(`^[a-z]+$`)
	namePattern     = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)
	imageURLPattern = regexp.MustCompile(`(?i)^https?://[^\s"'<>]+\.(jpe?g|png|avif|webp)(\?[^"\s]*)?$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Error messages name fields by their json tag.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return field.Name
		}
		return tag
	})

	mustRegister(v, "phone", phonePattern)
	mustRegister(v, "category_title", titlePattern)
	mustRegister(v, "slug", slugPattern)
	mustRegister(v, "person_name", namePattern)
	mustRegister(v, "image_url", imageURLPattern)

	return v
}

func mustRegister(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Struct validates a request struct and returns a client-facing error for
// the first violation.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return fmt.Errorf("missing required field %s", fe.Field())
		}
		return fmt.Errorf("invalid %s format", fe.Field())
	}

	return err
}

// ValidPhoneNumber reports whether v matches the E.164 format.
func ValidPhoneNumber(v string) bool {
	return validate.Var(v, "phone") == nil
}
