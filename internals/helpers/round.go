package helper

import "math"

// Round2 rounds credit totals to two decimal places, half away from zero at the
// hundredths digit. Credits are always positive so this behaves as round-half-up.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
