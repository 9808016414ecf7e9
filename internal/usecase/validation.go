package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigits    = regexp.MustCompile(`\D`)
	angleBracket = regexp.MustCompile(`[<>]`)
)

func ValidateCaptureLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(strings.TrimSpace(input.Name)) < 2 {
		errors = append(errors, ValidationError{"name", "must have at least 2 characters"})
	} else if len(input.Name) > 255 {
		errors = append(errors, ValidationError{"name", "must not exceed 255 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must have at least 10 digits"})
	}

	if strings.TrimSpace(input.Course) == "" {
		errors = append(errors, ValidationError{"course", "is required"})
	}
	if strings.TrimSpace(input.College) == "" {
		errors = append(errors, ValidationError{"college", "is required"})
	}
	if strings.TrimSpace(input.Year) == "" {
		errors = append(errors, ValidationError{"year", "is required"})
	}

	return errors
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

func isValidPhoneNumber(phone string) bool {
	return len(nonDigits.ReplaceAllString(phone, "")) >= 10
}

// sanitizeInput trims whitespace and strips angle brackets so raw form
// values never reach the database or the spreadsheet as markup.
func sanitizeInput(s string) string {
	return angleBracket.ReplaceAllString(strings.TrimSpace(s), "")
}
