package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePermutation(t *testing.T) {
	existing := []int64{1, 2, 3}

	t.Run("valid reorder", func(t *testing.T) {
		assert.NoError(t, validatePermutation(existing, []int64{3, 1, 2}))
	})

	t.Run("identity is valid", func(t *testing.T) {
		assert.NoError(t, validatePermutation(existing, []int64{1, 2, 3}))
	})

	t.Run("missing stop", func(t *testing.T) {
		assert.Error(t, validatePermutation(existing, []int64{1, 2}))
	})

	t.Run("duplicate stop", func(t *testing.T) {
		assert.Error(t, validatePermutation(existing, []int64{1, 2, 2}))
	})

	t.Run("foreign stop", func(t *testing.T) {
		assert.Error(t, validatePermutation(existing, []int64{1, 2, 99}))
	})
}
