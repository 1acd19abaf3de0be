// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/rental-forecast/pkg/loans"
	"github.com/iwvelando/rental-forecast/pkg/projection"
)

// ReferenceInputs returns the reference scenario: a 5,000,000 purchase with
// 20% down, a 6% 25-year annuity loan paid monthly, 3,300 of monthly costs and
// 25,000 of monthly rent.
func ReferenceInputs() projection.Inputs {
	return projection.Inputs{
		PurchasePrice:  5000000,
		DownPayment:    projection.DownPayment{Value: 0.20, IsPercent: true},
		InterestRate:   0.06,
		Years:          25,
		PeriodsPerYear: 12,
		LoanType:       loans.Annuity,
		Costs: projection.OperatingCosts{
			CommonCharges: 1500,
			MunicipalFees: 600,
			PropertyTax:   0,
			Maintenance:   800,
			Insurance:     400,
			Other:         0,
		},
		MonthlyRent:   25000,
		RentInflation: 0.025,
		CostInflation: 0.02,
		ValueGrowth:   0.03,
	}
}

// ShortTermInputs returns the reference scenario with three months per year
// let short-term at 3,000 per night and 75% occupancy.
func ShortTermInputs() projection.Inputs {
	in := ReferenceInputs()
	in.ShortTermRental = projection.ShortTermRental{
		Enabled:       true,
		MonthsPerYear: 3,
		NightlyPrice:  3000,
		Occupancy:     0.75,
	}
	return in
}
