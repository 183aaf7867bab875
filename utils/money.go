package utils

import "math"

// Cents converts an amount to whole cents, rounding half away from zero.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// Round2 rounds an amount to cents.
func Round2(amount float64) float64 {
	return FromCents(Cents(amount))
}
