// Package projection computes the period-by-period investment projection of a
// single rental property financed by a single loan.
package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/rental-forecast/pkg/loans"
	"go.uber.org/multierr"
)

// ErrInvalidInputs is returned when inputs are rejected before projection.
var ErrInvalidInputs = errors.New("invalid projection inputs")

// DownPayment is either an absolute amount or a fraction of the purchase
// price (0.2 for 20%).
type DownPayment struct {
	Value     float64 `json:"value"`
	IsPercent bool    `json:"isPercent"`
}

// OperatingCosts holds the fixed monthly cost components.
type OperatingCosts struct {
	CommonCharges float64 `json:"commonCharges"`
	MunicipalFees float64 `json:"municipalFees"`
	PropertyTax   float64 `json:"propertyTax"`
	Maintenance   float64 `json:"maintenance"`
	Insurance     float64 `json:"insurance"`
	Other         float64 `json:"other"`
}

// Total returns the sum of all cost components.
func (c OperatingCosts) Total() float64 {
	return c.CommonCharges + c.MunicipalFees + c.PropertyTax + c.Maintenance + c.Insurance + c.Other
}

type namedAmount struct {
	name   string
	amount float64
}

func (c OperatingCosts) components() []namedAmount {
	return []namedAmount{
		{"common charges", c.CommonCharges},
		{"municipal fees", c.MunicipalFees},
		{"property tax", c.PropertyTax},
		{"maintenance", c.Maintenance},
		{"insurance", c.Insurance},
		{"other costs", c.Other},
	}
}

// ShortTermRental replaces ordinary rent with nightly-priced income for the
// first MonthsPerYear months of every payment year.
type ShortTermRental struct {
	Enabled             bool    `json:"enabled"`
	MonthsPerYear       int     `json:"monthsPerYear"`
	NightlyPrice        float64 `json:"nightlyPrice"`
	Occupancy           float64 `json:"occupancy"` // 0-1
	FollowRentInflation bool    `json:"followRentInflation"`
}

// Active reports whether short-term income replaces any ordinary rent.
func (s ShortTermRental) Active() bool {
	return s.Enabled && s.MonthsPerYear > 0
}

// Inputs is the complete parameter set of a projection. All rates are
// fractions (0.06 for 6%).
type Inputs struct {
	PurchasePrice   float64         `json:"purchasePrice"`
	DownPayment     DownPayment     `json:"downPayment"`
	InterestRate    float64         `json:"interestRate"`
	Years           int             `json:"years"`
	PeriodsPerYear  int             `json:"periodsPerYear"`
	LoanType        loans.LoanType  `json:"loanType"`
	Costs           OperatingCosts  `json:"costs"`
	MonthlyRent     float64         `json:"monthlyRent"`
	RentInflation   float64         `json:"rentInflation"`
	CostInflation   float64         `json:"costInflation"`
	ValueGrowth     float64         `json:"valueGrowth"`
	ShortTermRental ShortTermRental `json:"shortTermRental"`
}

// NewInputs validates in and returns it unchanged. Violations are wrapped in
// ErrInvalidInputs.
func NewInputs(in Inputs) (Inputs, error) {
	if err := in.Validate(); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

// DownPaymentAmount resolves the down payment into an absolute amount.
func (in Inputs) DownPaymentAmount() float64 {
	if in.DownPayment.IsPercent {
		return in.DownPayment.Value * in.PurchasePrice
	}
	return in.DownPayment.Value
}

// LoanAmount is the financed amount. A down payment above the purchase price
// is allowed and leaves no loan.
func (in Inputs) LoanAmount() float64 {
	return math.Max(0, in.PurchasePrice-in.DownPaymentAmount())
}

// WithoutShortTermRental returns a copy of the inputs with ordinary rent in
// every month.
func (in Inputs) WithoutShortTermRental() Inputs {
	in.ShortTermRental = ShortTermRental{}
	return in
}

// Validate reports every constraint violation at once.
func (in Inputs) Validate() error {
	var errs error

	nonNegative := func(name string, value float64) {
		if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			errs = multierr.Append(errs, fmt.Errorf("%s must be a finite value >= 0, got %v", name, value))
		}
	}

	nonNegative("purchase price", in.PurchasePrice)
	nonNegative("down payment", in.DownPayment.Value)
	nonNegative("interest rate", in.InterestRate)
	nonNegative("monthly rent", in.MonthlyRent)
	nonNegative("rent inflation", in.RentInflation)
	nonNegative("cost inflation", in.CostInflation)
	nonNegative("value growth", in.ValueGrowth)
	for _, cost := range in.Costs.components() {
		nonNegative(cost.name, cost.amount)
	}

	if in.Years < 1 {
		errs = multierr.Append(errs, fmt.Errorf("years must be >= 1, got %d", in.Years))
	}
	if in.PeriodsPerYear < 1 {
		errs = multierr.Append(errs, fmt.Errorf("periods per year must be >= 1, got %d", in.PeriodsPerYear))
	}
	if in.LoanType != loans.Annuity && in.LoanType != loans.Serial {
		errs = multierr.Append(errs, fmt.Errorf("unknown loan type %q", in.LoanType))
	}

	str := in.ShortTermRental
	nonNegative("nightly price", str.NightlyPrice)
	if str.Occupancy < 0 || str.Occupancy > 1 || math.IsNaN(str.Occupancy) {
		errs = multierr.Append(errs, fmt.Errorf("occupancy must be within [0, 1], got %v", str.Occupancy))
	}
	if str.MonthsPerYear < 0 || (in.PeriodsPerYear >= 1 && str.MonthsPerYear > in.PeriodsPerYear) {
		errs = multierr.Append(errs, fmt.Errorf("short-term months per year must be within [0, %d], got %d",
			in.PeriodsPerYear, str.MonthsPerYear))
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInputs, errs)
	}
	return nil
}
