package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkedHours(t *testing.T) {
	t.Run("regular shift", func(t *testing.T) {
		hours, err := WorkedHours("06:00", "14:30")
		require.NoError(t, err)
		assert.InDelta(t, 8.5, hours, 0.001)
	})

	t.Run("overnight bakery shift", func(t *testing.T) {
		hours, err := WorkedHours("22:00", "05:00")
		require.NoError(t, err)
		assert.InDelta(t, 7.0, hours, 0.001)
	})

	t.Run("invalid time", func(t *testing.T) {
		_, err := WorkedHours("6am", "14:00")
		assert.Error(t, err)
	})
}

func TestAttainmentPct(t *testing.T) {
	assert.InDelta(t, 80.0, AttainmentPct(80, 100), 0.001)
	assert.InDelta(t, 125.0, AttainmentPct(125, 100), 0.001)
	assert.Equal(t, 0.0, AttainmentPct(10, 0))
}
