package card

import (
	"fmt"
	"strconv"
)

// Exp formats value as "%e", e.g. 1.410000e+01.
func Exp(value float64) string {
	return fmt.Sprintf("%e", value)
}

// Sci formats value as "%15.10e", e.g. 1.0000000000e-08.
func Sci(value float64) string {
	return fmt.Sprintf("%15.10e", value)
}

// Fixed formats value as "%6.4f", e.g. 0.0000.
func Fixed(value float64) string {
	return fmt.Sprintf("%6.4f", value)
}

// Int formats integer part of value.
func Int(value float64) string {
	return strconv.FormatInt(int64(value), 10)
}

// Ints formats integers.
func Ints(values ...int) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = strconv.Itoa(v)
	}
	return result
}

// Map formats values with given format function.
func Map(format func(float64) string, values ...float64) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = format(v)
	}
	return result
}
