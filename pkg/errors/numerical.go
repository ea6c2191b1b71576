package errors

import (
	"math"
)

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error if numerical instability is detected.
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values, iteration)
		}
	}
	return nil
}

// CheckScalar checks a single scalar value for numerical instability.
func CheckScalar(operation string, value float64, iteration int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, iteration)
	}
	return nil
}

// SafeDivide performs division with protection against division by zero.
// Returns 0 only when the denominator is exactly zero; tiny denominators
// still divide.
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// RoundTo rounds value to the given number of decimal places,
// half away from zero.
func RoundTo(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}
