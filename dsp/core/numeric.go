package core

import "math"

// MaxWeight is the 8-bit mix weight that selects input B entirely.
const MaxWeight = 255

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// IsFinite reports whether x is neither NaN nor Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// WeightFraction maps an 8-bit mix weight to the fraction percent/255.
func WeightFraction(percent uint8) float64 {
	return float64(percent) / MaxWeight
}

// FractionToWeight maps a fraction in [0,1] to the nearest 8-bit mix weight.
// Out-of-range and NaN fractions saturate.
func FractionToWeight(t float64) uint8 {
	if math.IsNaN(t) {
		return 0
	}

	return uint8(math.Round(Clamp(t, 0, 1) * MaxWeight))
}
