package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown on the form
var FieldLabels = map[string]string{
	"Name":      "Name",
	"WorkEmail": "Work email",
	"Telephone": "Telephone",
	"Company":   "Company",
	"Message":   "Message",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly
// messages, one per violated field. Never returns an empty slice for a
// non-nil error.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Malformed JSON or a type mismatch, not a field violation
		return []string{"Request body is not valid JSON"}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This field is required", label)
	case "min":
		return fmt.Sprintf("%s: Must be at least %s characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s: Must be at most %s characters", label, e.Param())
	case "email":
		return fmt.Sprintf("%s: Must be a valid email address", label)
	default:
		return fmt.Sprintf("%s: Validation failed (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
