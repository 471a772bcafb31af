package utils

import (
	"fmt"
	"strings"
)

// FormatBRL formats an amount as a string like "R$ 1.234,56".
// Uses dot as thousands separator and comma for cents (Brazilian format).
func FormatBRL(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	// Work in cents to avoid float formatting surprises
	cents := int64(amount*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	s := fmt.Sprintf("%d", whole)
	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 6)
	if neg {
		b.WriteString("-R$ ")
	} else {
		b.WriteString("R$ ")
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte('.')
		b.WriteString(s[i : i+3])
	}

	b.WriteString(fmt.Sprintf(",%02d", frac))
	return b.String()
}
