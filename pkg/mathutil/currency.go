// Package mathutil provides common mathematical utility functions.
//
// Truncation and rounding are separate policies and are never interchangeable:
// Floor and TruncateTo drop fractions, RoundToInt goes to the nearest whole
// unit.
package mathutil

import "math"

// RoundToInt rounds to the nearest whole unit, halves away from zero.
func RoundToInt(val float64) int64 {
	return int64(math.Round(val))
}

// Floor drops any fractional part, always towards negative infinity.
func Floor(val float64) float64 {
	return math.Floor(val)
}

// TruncateTo floors val after scaling by scale and divides back by divisor.
// TruncateTo(0.018087, 10000, 100) == 1.8
func TruncateTo(val, scale, divisor float64) float64 {
	return math.Floor(val*scale) / divisor
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
