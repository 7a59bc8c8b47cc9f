package meter

import (
	"math"
	"testing"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		want        float64
	}{
		{"XP towards next level", 3750, 5000, 75},
		{"energy", 850, 1000, 85},
		{"empty", 0, 5000, 0},
		{"full", 5000, 5000, 100},
		{"overflow clamps to 100", 6000, 5000, 100},
		{"negative clamps to 0", -10, 100, 0},
		{"zero denominator", 10, 0, 0},
		{"negative denominator", 10, -5, 0},
		{"NaN numerator", math.NaN(), 100, 0},
		{"NaN denominator", 10, math.NaN(), 0},
		{"infinite ratio", math.Inf(1), math.Inf(1), 0},
		{"infinite numerator clamps to 100", math.Inf(1), 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.numerator, tt.denominator); got != tt.want {
				t.Errorf("Percent(%v, %v) = %v, want %v", tt.numerator, tt.denominator, got, tt.want)
			}
		})
	}
}

func TestFraction(t *testing.T) {
	if got := Fraction(3750, 5000); got != 0.75 {
		t.Errorf("Fraction(3750, 5000) = %v, want 0.75", got)
	}
	if got := Fraction(1, 0); got != 0 {
		t.Errorf("Fraction(1, 0) = %v, want 0", got)
	}
}
