package validate

import "math"

const floatingPointTolerance = 0.000001

// Positive checks if value is finite and greater than zero.
func Positive(value float64) bool {
	return value > 0 && !math.IsInf(value, 1)
}

// NonNegative checks if value is finite and not below zero.
func NonNegative(value float64) bool {
	return value >= -floatingPointTolerance && !math.IsInf(value, 1) && !math.IsNaN(value)
}

// NonDecreasing checks if every value is not smaller than previous one.
func NonDecreasing(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}

// Letter checks if value is single ASCII letter.
func Letter(value string) bool {
	if len(value) != 1 {
		return false
	}
	c := value[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
