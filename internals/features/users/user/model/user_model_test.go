package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDeriveCustomID(t *testing.T) {
	t.Run("teacher gets T prefix", func(t *testing.T) {
		id := DeriveCustomID("teacher", strPtr("01712345678"))
		require.NotNil(t, id)
		assert.Equal(t, "T01712345678", *id)
	})

	t.Run("student gets S prefix", func(t *testing.T) {
		id := DeriveCustomID("student", strPtr("01898765432"))
		require.NotNil(t, id)
		assert.Equal(t, "S01898765432", *id)
	})

	t.Run("missing phone yields nil", func(t *testing.T) {
		assert.Nil(t, DeriveCustomID("teacher", nil))
		assert.Nil(t, DeriveCustomID("teacher", strPtr("")))
	})

	t.Run("unknown role yields nil", func(t *testing.T) {
		assert.Nil(t, DeriveCustomID("admin", strPtr("01712345678")))
	})
}
