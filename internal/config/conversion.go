// Package config defines conversion utilities for configuration objects.
package config

import (
	"fmt"

	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/loans"
	"github.com/iwvelando/rental-forecast/pkg/mathutil"
	"github.com/iwvelando/rental-forecast/pkg/projection"
)

// ToInputs converts the percent-based configuration into validated projection
// inputs.
func (c *Configuration) ToInputs() (projection.Inputs, error) {
	loanType, err := loans.ParseLoanType(c.Financing.LoanType)
	if err != nil {
		return projection.Inputs{}, err
	}

	downPayment := projection.DownPayment{
		Value:     c.Financing.DownPayment,
		IsPercent: c.Financing.DownPaymentIsPercent,
	}
	if downPayment.IsPercent {
		downPayment.Value = mathutil.FromPercent(downPayment.Value)
	}

	return projection.NewInputs(projection.Inputs{
		PurchasePrice:  c.Property.PurchasePrice,
		DownPayment:    downPayment,
		InterestRate:   mathutil.FromPercent(c.Financing.InterestRate),
		Years:          c.Financing.Years,
		PeriodsPerYear: c.Financing.PeriodsPerYear,
		LoanType:       loanType,
		Costs: projection.OperatingCosts{
			CommonCharges: c.Costs.CommonCharges,
			MunicipalFees: c.Costs.MunicipalFees,
			PropertyTax:   c.Costs.PropertyTax,
			Maintenance:   c.Costs.Maintenance,
			Insurance:     c.Costs.Insurance,
			Other:         c.Costs.Other,
		},
		MonthlyRent:   c.Income.MonthlyRent,
		RentInflation: mathutil.FromPercent(c.Growth.RentInflation),
		CostInflation: mathutil.FromPercent(c.Growth.CostInflation),
		ValueGrowth:   mathutil.FromPercent(c.Growth.ValueGrowth),
		ShortTermRental: projection.ShortTermRental{
			Enabled:             c.ShortTermRental.Enabled,
			MonthsPerYear:       c.ShortTermRental.MonthsPerYear,
			NightlyPrice:        c.ShortTermRental.NightlyPrice,
			Occupancy:           mathutil.FromPercent(c.ShortTermRental.Occupancy),
			FollowRentInflation: c.ShortTermRental.FollowRentInflation,
		},
	})
}

// BenchmarkRate resolves the annual return of a benchmark as a fraction.
func (c *Configuration) BenchmarkRate(benchmark Benchmark) float64 {
	if benchmark.UseCostInflation {
		return mathutil.FromPercent(c.Growth.CostInflation)
	}
	return mathutil.FromPercent(benchmark.AnnualReturn)
}

// fractionLikePercent is the bound below which a percent field most likely
// holds a fraction (0.06 typed for 6%).
const fractionLikePercent = 0.2

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard errors are reported by the projection itself.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Financing.DownPaymentIsPercent && c.Financing.DownPayment > constants.PercentageMultiplier {
		warnings = append(warnings, fmt.Sprintf("down payment of %.2f%% exceeds the purchase price; no loan will be taken",
			c.Financing.DownPayment))
	}
	if !c.Financing.DownPaymentIsPercent && c.Financing.DownPayment > c.Property.PurchasePrice {
		warnings = append(warnings, fmt.Sprintf("down payment of %.2f exceeds the purchase price of %.2f; no loan will be taken",
			c.Financing.DownPayment, c.Property.PurchasePrice))
	}
	if c.Financing.DownPaymentIsPercent && c.Financing.DownPayment > 0 && c.Financing.DownPayment < fractionLikePercent {
		warnings = append(warnings, fmt.Sprintf("down payment of %.4f%% looks like a fraction; percent values are expected (20 for 20%%)",
			c.Financing.DownPayment))
	}
	if c.Financing.InterestRate > 0 && c.Financing.InterestRate < fractionLikePercent {
		warnings = append(warnings, fmt.Sprintf("interest rate of %.4f%% looks like a fraction; percent values are expected (6 for 6%%)",
			c.Financing.InterestRate))
	}

	str := c.ShortTermRental
	if str.Enabled && str.MonthsPerYear == 0 {
		warnings = append(warnings, "short-term rental is enabled but monthsPerYear is 0; ordinary rent is used all year")
	}
	if str.Enabled && str.MonthsPerYear > 0 && (str.NightlyPrice == 0 || str.Occupancy == 0) {
		warnings = append(warnings, "short-term rental produces no income: nightly price or occupancy is 0")
	}
	if !str.Enabled && str.MonthsPerYear > 0 {
		warnings = append(warnings, fmt.Sprintf("short-term rental is disabled; monthsPerYear of %d is ignored", str.MonthsPerYear))
	}

	if c.Property.PurchasePrice == 0 {
		warnings = append(warnings, "purchase price is 0; cap rate and loan-to-value are not meaningful")
	}

	for _, benchmark := range c.Benchmarks {
		if benchmark.Name == "" {
			warnings = append(warnings, "benchmark without a name will be reported as unnamed")
		}
	}

	return warnings
}
