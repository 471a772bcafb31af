package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 9,50", FormatBRL(9.5))
	assert.Equal(t, "R$ 12,00", FormatBRL(12))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(1000000))
	assert.Equal(t, "-R$ 500,25", FormatBRL(-500.25))
}
