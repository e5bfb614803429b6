// Package validation holds the field-level rules shared by the entity
// services. Every rule appends to an apperrors.ValidationError instead of
// failing fast, so a rejected submission reports all of its problems at once.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/textex/textex/internal/pkg/apperrors"
)

// Validation rule patterns and limits
var (
	// EmailPattern is the accepted email shape
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PasswordMinLength is the minimum student password length
	PasswordMinLength = 10
)

// EmailRX caches the compiled email pattern
var EmailRX = regexp.MustCompile(EmailPattern)

// RequiredString checks that value is non-empty after trimming. Returns true
// when the value is present so dependent rules can be skipped on absence.
func RequiredString(ve *apperrors.ValidationError, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		ve.Add(field, apperrors.KindRequired, "This field is required.")
		return false
	}
	return true
}

// MinLength checks that value has at least min characters.
func MinLength(ve *apperrors.ValidationError, field, value string, min int) {
	if len(value) < min {
		ve.Add(field, apperrors.KindMinLength, fmt.Sprintf("Must be at least %d characters long.", min))
	}
}

// Email checks that value looks like an email address.
func Email(ve *apperrors.ValidationError, field, value string) {
	if !EmailRX.MatchString(value) {
		ve.Add(field, apperrors.KindEmail, "Not a valid email address.")
	}
}

// MinFloat checks that value >= min.
func MinFloat(ve *apperrors.ValidationError, field string, value, min float64) {
	if value < min {
		ve.Add(field, apperrors.KindMin, fmt.Sprintf("Must be at least %g. Given: %g", min, value))
	}
}

// MinInt checks that value >= min.
func MinInt(ve *apperrors.ValidationError, field string, value, min int) {
	if value < min {
		ve.Add(field, apperrors.KindMin, fmt.Sprintf("Must be at least %d. Given: %d", min, value))
	}
}

// RequiredFloat parses a numeric form field submitted as text. A blank value
// reports Required and an unparseable one Invalid; only a successful parse
// returns true, so dependent range rules can be skipped otherwise.
func RequiredFloat(ve *apperrors.ValidationError, field, value string) (float64, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		ve.Add(field, apperrors.KindRequired, "This field is required.")
		return 0, false
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		ve.Add(field, apperrors.KindInvalid, fmt.Sprintf("Must be a number. Given: %s", trimmed))
		return 0, false
	}
	return parsed, true
}

// RequiredInt is the integer counterpart of RequiredFloat.
func RequiredInt(ve *apperrors.ValidationError, field, value string) (int, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		ve.Add(field, apperrors.KindRequired, "This field is required.")
		return 0, false
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		ve.Add(field, apperrors.KindInvalid, fmt.Sprintf("Must be a whole number. Given: %s", trimmed))
		return 0, false
	}
	return parsed, true
}
