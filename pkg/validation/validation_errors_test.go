package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name      string `validate:"required,min=2"`
	WorkEmail string `validate:"required,email"`
	Company   string `validate:"required,min=2"`
	Message   string `validate:"required,min=10"`
}

func TestFormatValidationErrorsReportsEveryField(t *testing.T) {
	v := validator.New()
	err := v.Struct(contactForm{
		Name:      "J",
		WorkEmail: "nope",
		Company:   "A",
		Message:   "short",
	})
	require.Error(t, err)

	messages := FormatValidationErrors(err)
	assert.Len(t, messages, 4)
	assert.Contains(t, messages, "Name: Must be at least 2 characters")
	assert.Contains(t, messages, "Work email: Must be a valid email address")
	assert.Contains(t, messages, "Company: Must be at least 2 characters")
	assert.Contains(t, messages, "Message: Must be at least 10 characters")
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	v := validator.New()
	err := v.Struct(contactForm{})
	require.Error(t, err)

	messages := FormatValidationErrors(err)
	assert.Len(t, messages, 4)
	assert.Contains(t, messages, "Name: This field is required")
}

func TestFormatValidationErrorsNonValidationError(t *testing.T) {
	messages := FormatValidationErrors(errors.New("unexpected EOF"))
	assert.Equal(t, []string{"Request body is not valid JSON"}, messages)
}
