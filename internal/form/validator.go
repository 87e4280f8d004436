package form

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationError is returned when a request does not pass validation.
// It is reported to clients as a bad request.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, " ")
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Violations: []string{formatErrMsg(msg)}}
}

// Analog validation.ValidateStruct ozzy validation but returns a ValidationError
// with one violation per field.
func ValidateStruct(structField interface{}, rules ...*validation.FieldRules) error {
	var violations []string

	for _, rule := range rules {
		err := validation.ValidateStruct(structField, rule)
		if err == nil {
			continue
		}
		ve, ok := err.(validation.Errors)
		if !ok {
			// internal error, the rules themselves are broken
			return err
		}
		keys := make([]string, 0, len(ve))
		for k := range ve {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			violations = append(violations, formatErrMsg(k+": "+ve[k].Error()))
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+1:]
	}
	return ""
}

// intBetween validates an optional decimal string holding an integer in [min, max].
func intBetween(min, max int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("must be an integer")
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

// atoiOr parses an already validated integer, empty values give def.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
