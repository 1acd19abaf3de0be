package validation

import (
	"fmt"

	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/projection"
)

// AssessRisk inspects a projection and returns human readable advisories.
// An empty result means nothing stood out.
func AssessRisk(result projection.Result) []string {
	var advisories []string

	// A cash purchase has no debt service and the floored DSCR is huge.
	if result.LoanAmount > 0 {
		dscr := result.Metrics.Year1DSCR
		switch {
		case dscr < constants.DSCRFloor:
			advisories = append(advisories, fmt.Sprintf("year 1 DSCR of %.2f is below %.2f: net operating income does not cover debt service",
				dscr, constants.DSCRFloor))
		case dscr < constants.DSCRWarning:
			advisories = append(advisories, fmt.Sprintf("year 1 DSCR of %.2f is below the common lender threshold of %.2f",
				dscr, constants.DSCRWarning))
		}
	}

	if result.Metrics.Month1CashFlow < 0 {
		advisories = append(advisories, fmt.Sprintf("month 1 cash flow is negative (%.2f)", result.Metrics.Month1CashFlow))
	}

	var negativeYears []int
	for _, row := range result.Yearly {
		if row.CashFlow < 0 {
			negativeYears = append(negativeYears, row.Year)
		}
	}
	if len(negativeYears) > 0 {
		advisories = append(advisories, fmt.Sprintf("cash flow is negative in %d of %d years (first: year %d, last: year %d)",
			len(negativeYears), len(result.Yearly), negativeYears[0], negativeYears[len(negativeYears)-1]))
	}

	return advisories
}
