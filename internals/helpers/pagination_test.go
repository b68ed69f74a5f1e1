package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	t.Run("middle page has more pages", func(t *testing.T) {
		p := BuildPagination(25, 2, 10)
		assert.Equal(t, 2, p.CurrentPage)
		assert.Equal(t, 10, p.PerPage)
		assert.Equal(t, int64(25), p.Total)
		assert.Equal(t, 3, p.TotalPages)
		assert.True(t, p.HasMorePages)
	})

	t.Run("last page has no more pages", func(t *testing.T) {
		p := BuildPagination(25, 3, 10)
		assert.False(t, p.HasMorePages)
	})

	t.Run("empty result still reports one page", func(t *testing.T) {
		p := BuildPagination(0, 1, 10)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasMorePages)
	})
}
