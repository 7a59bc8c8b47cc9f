// Package meter computes the fill ratios shown by XP, energy and course bars.
package meter

import "math"

// Percent returns numerator/denominator*100 clamped to [0, 100].
// A zero or negative denominator, or a NaN ratio, yields 0.
func Percent(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	p := numerator / denominator * 100
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Fraction is Percent scaled to [0, 1], the range progress bars expect.
func Fraction(numerator, denominator float64) float64 {
	return Percent(numerator, denominator) / 100
}
