package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Role     string `validate:"required,oneof=teacher student"`
	CustomID string `validate:"required"`
}

func TestValidate(t *testing.T) {
	t.Run("valid struct yields no field errors", func(t *testing.T) {
		fieldErrors, err := Validate(sampleRequest{
			Name:     "Ayesha",
			Email:    "ayesha@example.com",
			Password: "secret1",
			Role:     "teacher",
			CustomID: "T0123456789",
		})
		require.NoError(t, err)
		assert.Nil(t, fieldErrors)
	})

	t.Run("messages mirror the form-error wording", func(t *testing.T) {
		fieldErrors, err := Validate(sampleRequest{
			Email:    "not-an-email",
			Password: "abc",
			Role:     "admin",
			CustomID: "T0123456789",
		})
		require.NoError(t, err)
		require.NotNil(t, fieldErrors)

		assert.Equal(t, []string{"The name field is required."}, fieldErrors["name"])
		assert.Equal(t, []string{"The email must be a valid email address."}, fieldErrors["email"])
		assert.Equal(t, []string{"The password must be at least 6 characters."}, fieldErrors["password"])
		assert.Equal(t, []string{"The selected role is invalid."}, fieldErrors["role"])
	})

	t.Run("consecutive capitals collapse into one word", func(t *testing.T) {
		fieldErrors, err := Validate(sampleRequest{
			Name:     "Ayesha",
			Email:    "ayesha@example.com",
			Password: "secret1",
			Role:     "student",
		})
		require.NoError(t, err)
		require.NotNil(t, fieldErrors)

		_, ok := fieldErrors["custom_id"]
		assert.True(t, ok, "expected CustomID to map to custom_id, got %v", fieldErrors)
	})
}
