package projection

import (
	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/mathutil"
)

// GrowthSeries returns n values starting at base and compounding at
// periodicRate, so value[m-1] = base * (1+periodicRate)^(m-1).
func GrowthSeries(base, periodicRate float64, n int) []float64 {
	series := make([]float64, n)
	for i := range series {
		series[i] = mathutil.Grow(base, periodicRate, i)
	}
	return series
}

// ShortTermMonthlyIncome is the income of one month let at nightlyPrice with
// the given occupancy, assuming a 30-night month.
func ShortTermMonthlyIncome(nightlyPrice, occupancy float64) float64 {
	return nightlyPrice * constants.NightsPerMonth * occupancy
}

// IsShortTermMonth reports whether the 1-based month falls within the first
// monthsPerYear positions of its cycle.
func IsShortTermMonth(month, cycleLength, monthsPerYear int) bool {
	if cycleLength < 1 {
		return false
	}
	return (month-1)%cycleLength+1 <= monthsPerYear
}

// BlendShortTermRental returns a new rent series where each short-term month
// carries short-term income instead of ordinary rent. The input series is not
// modified. rentMonthlyRate drives the nightly price when it follows rent
// inflation.
func BlendShortTermRental(rent []float64, str ShortTermRental, rentMonthlyRate float64, cycleLength int) []float64 {
	blended := make([]float64, len(rent))
	copy(blended, rent)
	if !str.Active() {
		return blended
	}

	nightlyRate := 0.0
	if str.FollowRentInflation {
		nightlyRate = rentMonthlyRate
	}
	nightly := GrowthSeries(str.NightlyPrice, nightlyRate, len(rent))

	for i := range blended {
		if IsShortTermMonth(i+1, cycleLength, str.MonthsPerYear) {
			blended[i] = ShortTermMonthlyIncome(nightly[i], str.Occupancy)
		}
	}
	return blended
}

// PropertyValue returns the value during the given 1-based year. Growth is
// applied at year boundaries starting with year 2.
func PropertyValue(purchasePrice, annualGrowth float64, year int) float64 {
	return mathutil.Grow(purchasePrice, annualGrowth, year-1)
}
