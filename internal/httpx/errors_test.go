package httpx

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationDetails(t *testing.T) {
	type form struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	v := validator.New(validator.WithRequiredStructEnabled())

	t.Run("field errors map to field and rule", func(t *testing.T) {
		err := v.Struct(form{Email: "nope", Password: "short"})
		require.Error(t, err)

		fields := ValidationDetails(err)
		require.Len(t, fields, 2)
		assert.Equal(t, FieldError{Field: "Email", Rule: "email"}, fields[0])
		assert.Equal(t, FieldError{Field: "Password", Rule: "min", Param: "8"}, fields[1])
	})

	t.Run("non-validator errors collapse to one entry", func(t *testing.T) {
		fields := ValidationDetails(errors.New("boom"))
		require.Len(t, fields, 1)
		assert.Equal(t, "invalid", fields[0].Rule)
	})
}

func TestValidationMessage(t *testing.T) {
	assert.Equal(t, "validation failed", ValidationMessage(nil))

	msg := ValidationMessage([]FieldError{
		{Field: "Email", Rule: "email"},
		{Field: "Password", Rule: "min", Param: "8"},
	})
	assert.Equal(t, "validation failed: Email email, Password min=8", msg)
}
