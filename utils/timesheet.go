package utils

import (
	"fmt"
	"time"
)

// WorkedHours returns the hours between clock-in and clock-out, both in
// "HH:MM" format. A clock-out earlier than the clock-in is treated as an
// overnight shift.
func WorkedHours(clockIn, clockOut string) (float64, error) {
	in, err := time.Parse("15:04", clockIn)
	if err != nil {
		return 0, fmt.Errorf("invalid clock-in %q: %w", clockIn, err)
	}
	out, err := time.Parse("15:04", clockOut)
	if err != nil {
		return 0, fmt.Errorf("invalid clock-out %q: %w", clockOut, err)
	}

	d := out.Sub(in)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d.Hours(), nil
}

// AttainmentPct returns produced/target as a percentage, 0 when the target
// is zero.
func AttainmentPct(produced, target int) float64 {
	if target <= 0 {
		return 0
	}
	return float64(produced) / float64(target) * 100
}
