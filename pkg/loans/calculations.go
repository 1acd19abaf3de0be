// Package loans provides loan amortization utilities.
package loans

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// ErrInvalidLoan is returned when loan parameters cannot produce a schedule.
var ErrInvalidLoan = errors.New("invalid loan")

// LoanType selects how principal is repaid over the term.
type LoanType string

const (
	// Annuity keeps the total payment constant.
	Annuity LoanType = constants.LoanTypeAnnuity
	// Serial keeps the principal repayment constant.
	Serial LoanType = constants.LoanTypeSerial
)

// ParseLoanType converts a configuration string into a LoanType. An empty
// string selects Annuity.
func ParseLoanType(value string) (LoanType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", constants.LoanTypeAnnuity:
		return Annuity, nil
	case constants.LoanTypeSerial:
		return Serial, nil
	default:
		return "", fmt.Errorf("%w: expected loan type %s or %s, got %q",
			ErrInvalidLoan, constants.LoanTypeAnnuity, constants.LoanTypeSerial, value)
	}
}

// Payment holds the values for a given period of the schedule.
type Payment struct {
	Period             int     `json:"period"`
	Year               int     `json:"year"`
	Payment            float64 `json:"payment"`
	Interest           float64 `json:"interest"`
	Principal          float64 `json:"principal"`
	RemainingPrincipal float64 `json:"balance"`
}

// LoanConfig represents loan parameters. InterestRate is a nominal annual
// fraction (0.06 for 6%).
type LoanConfig struct {
	Principal      float64
	InterestRate   float64
	Years          int
	PeriodsPerYear int
	Type           LoanType
}

// Periods returns the number of payments over the term.
func (l LoanConfig) Periods() int {
	return l.Years * l.PeriodsPerYear
}

// PeriodicRate returns the nominal annual rate divided by the number of
// periods per year. The annual rate is divided, not compounded.
func (l LoanConfig) PeriodicRate() float64 {
	if l.PeriodsPerYear <= 0 {
		return 0
	}
	return l.InterestRate / float64(l.PeriodsPerYear)
}

// Validate checks that the loan can be scheduled.
func (l LoanConfig) Validate() error {
	switch {
	case l.Principal < 0 || math.IsNaN(l.Principal) || math.IsInf(l.Principal, 0):
		return fmt.Errorf("%w: principal must be a finite value >= 0, got %v", ErrInvalidLoan, l.Principal)
	case l.InterestRate < 0 || math.IsNaN(l.InterestRate) || math.IsInf(l.InterestRate, 0):
		return fmt.Errorf("%w: interest rate must be a finite value >= 0, got %v", ErrInvalidLoan, l.InterestRate)
	case l.Years < 1:
		return fmt.Errorf("%w: years must be >= 1, got %d", ErrInvalidLoan, l.Years)
	case l.PeriodsPerYear < 1:
		return fmt.Errorf("%w: periods per year must be >= 1, got %d", ErrInvalidLoan, l.PeriodsPerYear)
	case l.Type != Annuity && l.Type != Serial:
		return fmt.Errorf("%w: unknown loan type %q", ErrInvalidLoan, l.Type)
	}
	return nil
}

// CalculatePeriodicPayment calculates the constant payment of an annuity loan
// using the standard amortization formula.
func CalculatePeriodicPayment(principal, periodicRate float64, periods int) float64 {
	if periods <= 0 {
		return 0
	}
	if periodicRate == 0 {
		return principal / float64(periods)
	}
	return principal * periodicRate / (1 - math.Pow(1+periodicRate, -float64(periods)))
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, periodicRate float64) float64 {
	return remainingPrincipal * periodicRate
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// GenerateSchedule creates the complete amortization schedule for a loan. The
// schedule always has loan.Periods() rows and the final row always ends at a
// balance of exactly zero.
func (g *AmortizationScheduleGenerator) GenerateSchedule(loan LoanConfig) ([]Payment, error) {
	if err := loan.Validate(); err != nil {
		return nil, err
	}

	n := loan.Periods()
	r := loan.PeriodicRate()
	schedule := make([]Payment, 0, n)

	annuityPayment := CalculatePeriodicPayment(loan.Principal, r, n)
	fixedPrincipal := loan.Principal / float64(n)

	balance := loan.Principal
	for period := 1; period <= n; period++ {
		var current Payment
		current.Period = period
		current.Year = (period-1)/loan.PeriodsPerYear + 1
		current.Interest = CalculateInterestPayment(balance, r)

		switch loan.Type {
		case Serial:
			current.Principal = fixedPrincipal
			current.Payment = fixedPrincipal + current.Interest
		default:
			current.Payment = annuityPayment
			current.Principal = annuityPayment - current.Interest
		}

		if period == n {
			// We will get machine error otherwise so settle the exact balance.
			if !mathutil.IsZero(balance - current.Principal) {
				g.logger.Debug(fmt.Sprintf("final period residual of %.2f settled", balance-current.Principal),
					zap.String("op", "loans.GenerateSchedule"),
					zap.String("type", string(loan.Type)),
				)
			}
			current.Principal = balance
			current.Payment = current.Principal + current.Interest
			balance = 0
		} else {
			balance -= current.Principal
		}

		current.RemainingPrincipal = mathutil.Max(balance, 0)
		schedule = append(schedule, current)
	}

	g.logger.Debug(fmt.Sprintf("generated %d period %s schedule for principal %.2f", n, loan.Type, loan.Principal),
		zap.String("op", "loans.GenerateSchedule"),
	)

	return schedule, nil
}

// TotalInterest returns the interest paid over the whole schedule.
func TotalInterest(schedule []Payment) float64 {
	total := 0.0
	for _, payment := range schedule {
		total += payment.Interest
	}
	return total
}

// TotalPrincipal returns the principal repaid over the whole schedule.
func TotalPrincipal(schedule []Payment) float64 {
	total := 0.0
	for _, payment := range schedule {
		total += payment.Principal
	}
	return total
}
