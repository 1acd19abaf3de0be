// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/rental-forecast/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// SafeDivide divides numerator by denominator after flooring the denominator
// at constants.DenominatorFloor, so the result is always finite.
func SafeDivide(numerator, denominator float64) float64 {
	return numerator / Max(constants.DenominatorFloor, denominator)
}

// FromPercent converts a percentage such as 6.0 into the fraction 0.06.
func FromPercent(percentage float64) float64 {
	return percentage / constants.PercentageMultiplier
}

// MonthlyEquivalentRate returns the monthly rate that compounds to the given
// annual rate over twelve months: (1+annual)^(1/12) - 1.
func MonthlyEquivalentRate(annualRate float64) float64 {
	return math.Pow(1+annualRate, 1.0/constants.MonthsPerYear) - 1
}

// Grow applies compounding growth at rate for the given number of periods.
func Grow(base, rate float64, periods int) float64 {
	return base * math.Pow(1+rate, float64(periods))
}
