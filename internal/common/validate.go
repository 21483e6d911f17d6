package common

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// +[country code][number], 7 to 19 digits after the plus.
	mobilePattern = regexp.MustCompile(`^\+[1-9]\d{0,3}[0-9]{6,15}$`)
)

// ValidateRequiredString validates required string fields.
func ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateStringLength validates maximum string length.
func ValidateStringLength(value, fieldName string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLength)
	}
	return nil
}

// ValidateOptionalString validates optional string fields.
func ValidateOptionalString(value *string, fieldName string, maxLength int) error {
	if value == nil {
		return nil
	}
	return ValidateStringLength(*value, fieldName, maxLength)
}

// ValidateEmail validates email format.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("email must be valid")
	}
	return nil
}

// ValidateMobileNumber validates the +[country code][number] format.
func ValidateMobileNumber(mobile string) error {
	if strings.TrimSpace(mobile) == "" {
		return fmt.Errorf("mobile number is required")
	}
	if !mobilePattern.MatchString(mobile) {
		return fmt.Errorf("mobile number must be in format +[country code][number] (e.g., +919876543210)")
	}
	return nil
}

// ValidatePassword validates password length bounds.
func ValidatePassword(password, fieldName string) error {
	if password == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if len(password) < 6 || len(password) > 100 {
		return fmt.Errorf("%s must be between 6 and 100 characters", fieldName)
	}
	return nil
}

// ValidateAmount validates that a monetary amount is at least 0.01.
func ValidateAmount(amount decimal.Decimal, fieldName string) error {
	if amount.LessThan(decimal.New(1, -2)) {
		return fmt.Errorf("%s must be greater than 0", fieldName)
	}
	return nil
}

// ValidateEnum validates a value against a fixed set of allowed values.
func ValidateEnum(value, fieldName string, allowed []string) error {
	for _, v := range allowed {
		if value == v {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of: %s", fieldName, strings.Join(allowed, ", "))
}
