// Package validation holds the shared go-playground validator configured
// with folio's custom tags.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeIDPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	rgbPattern      = regexp.MustCompile(`^rgba?\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*(?:,\s*(?:0|1|0?\.\d+|1\.0+)\s*)?\)$`)
	hslPattern      = regexp.MustCompile(`^hsla?\(\s*\d{1,3}\s*,\s*\d{1,3}%\s*,\s*\d{1,3}%\s*(?:,\s*(?:0|1|0?\.\d+)\s*)?\)$`)
	cssColorKeyword = map[string]struct{}{"transparent": {}, "currentcolor": {}, "black": {}, "white": {}}
)

// Validator returns the shared validator. Field names in errors follow the
// yaml, json or mapstructure tag of the field.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"yaml", "json", "mapstructure"} {
				name := strings.Split(field.Tag.Get(tag), ",")[0]
				if name != "" {
					return name
				}
			}
			return field.Name
		})

		_ = v.RegisterValidation("theme_id", func(fl validator.FieldLevel) bool {
			return IsThemeID(fl.Field().String())
		})

		_ = v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
			return IsCSSColor(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// IsThemeID reports whether id is lower-kebab-case.
func IsThemeID(id string) bool {
	return themeIDPattern.MatchString(id)
}

// IsCSSColor accepts hex, rgb(a), hsl(a) and a few keywords.
func IsCSSColor(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return false
	}
	if _, ok := cssColorKeyword[value]; ok {
		return true
	}
	if strings.HasPrefix(value, "#") {
		return isHex(value)
	}
	return rgbPattern.MatchString(value) || hslPattern.MatchString(value)
}

func isHex(value string) bool {
	switch len(value) {
	case 4, 5:
		// #rgb and #rgba
		expanded := "#"
		for _, r := range value[1:4] {
			expanded += string(r) + string(r)
		}
		_, err := colorful.Hex(expanded)
		return err == nil && (len(value) == 4 || isHexDigit(value[4]))
	case 7:
		_, err := colorful.Hex(value)
		return err == nil
	case 9:
		_, err := colorful.Hex(value[:7])
		return err == nil && isHexDigit(value[7]) && isHexDigit(value[8])
	default:
		return false
	}
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// Struct validates v and reports every failing field as a ValidationError
// for path, joined with errors.Join.
func Struct(path string, v interface{}) error {
	return Convert(path, Validator().Struct(v))
}

// Convert normalises validator errors into ValidationErrors.
func Convert(path string, err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError(path, "", err.Error(), err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldName(fe)
		errs = append(errs, apperrors.NewValidationError(path, field, describe(fe), fe))
	}
	return errors.Join(errs...)
}

// fieldName drops the root struct name from the namespace.
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "url", "http_url":
		return "must be a valid URL"
	case "theme_id":
		return "must be lower-kebab-case"
	case "css_color":
		return fmt.Sprintf("%q is not a CSS color", fe.Value())
	case "min":
		return fmt.Sprintf("must have at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
