package shared

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxLabelLength bounds free-form labels such as status, priority, category and channel
const MaxLabelLength = 50

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RequireText trims value and checks it is non-empty and at most maxLen runes.
// field is the human readable field name, used for the error code and message.
func RequireText(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalid(field, fmt.Sprintf("%s is required", field))
	}
	return value, MaxText(field, value, maxLen)
}

// MaxText checks an optional text value fits in maxLen runes
func MaxText(field, value string, maxLen int) error {
	if len([]rune(value)) > maxLen {
		return invalid(field, fmt.Sprintf("%s cannot exceed %d characters", field, maxLen))
	}
	return nil
}

// RequireJSON checks that value is a non-empty, syntactically valid JSON document
func RequireJSON(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, fmt.Sprintf("%s is required", field))
	}
	if !json.Valid([]byte(value)) {
		return invalid(field, fmt.Sprintf("%s must be valid JSON", field))
	}
	return nil
}

// ValidateEmail checks an optional e-mail address
func ValidateEmail(field, value string) error {
	if value == "" {
		return nil
	}
	if len(value) > 200 || !emailPattern.MatchString(value) {
		return invalid(field, fmt.Sprintf("%s is not a valid e-mail address", field))
	}
	return nil
}

// ValidateRange checks min <= v <= max
func ValidateRange(field string, v, min, max float64) error {
	if v < min || v > max {
		return invalid(field, fmt.Sprintf("%s must be between %g and %g", field, min, max))
	}
	return nil
}

// ValidateNonNegative checks v >= 0
func ValidateNonNegative(field string, v int) error {
	if v < 0 {
		return invalid(field, fmt.Sprintf("%s cannot be negative", field))
	}
	return nil
}

// ValidateNonNegativeAmount checks a money amount is >= 0
func ValidateNonNegativeAmount(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return invalid(field, fmt.Sprintf("%s cannot be negative", field))
	}
	return nil
}

func invalid(field, message string) *DomainError {
	code := "INVALID_" + strings.ToUpper(strings.ReplaceAll(field, " ", "_"))
	return NewDomainError(code, message)
}
