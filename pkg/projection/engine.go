package projection

import (
	"fmt"

	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/loans"
	"github.com/iwvelando/rental-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// MonthlyRow is one period of the projection.
type MonthlyRow struct {
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	Rent           float64 `json:"rent"`
	OperatingCosts float64 `json:"operating_costs"`
	NOI            float64 `json:"noi"`
	DebtService    float64 `json:"debt_service"`
	CashFlow       float64 `json:"cash_flow"`
	LoanBalance    float64 `json:"loan_balance"`
	PropertyValue  float64 `json:"property_value"`
	Equity         float64 `json:"equity"`
}

// YearlyRow aggregates the months of one year. Flows are summed while loan
// balance, property value and equity are taken from the year's last month.
type YearlyRow struct {
	Year           int     `json:"year"`
	Rent           float64 `json:"rent"`
	OperatingCosts float64 `json:"operating_costs"`
	NOI            float64 `json:"noi"`
	DebtService    float64 `json:"debt_service"`
	CashFlow       float64 `json:"cash_flow"`
	LoanBalance    float64 `json:"loan_balance"`
	PropertyValue  float64 `json:"property_value"`
	Equity         float64 `json:"equity"`
}

// Metrics summarizes the first month and year of the projection.
type Metrics struct {
	Month1CashFlow   float64 `json:"month1_cash_flow"`
	Year1NOI         float64 `json:"year1_noi"`
	Year1DebtService float64 `json:"year1_debt_service"`
	Year1DSCR        float64 `json:"dscr_y1"`
	Year1CapRate     float64 `json:"cap_rate_y1"`
	LTVAtPurchase    float64 `json:"ltv_at_purchase"`
}

// Result bundles everything produced by one projection.
type Result struct {
	Amortization []loans.Payment `json:"amortization"`
	Monthly      []MonthlyRow    `json:"monthly"`
	Yearly       []YearlyRow     `json:"yearly"`
	Metrics      Metrics         `json:"metrics"`
	LoanAmount   float64         `json:"loan_amount"`
	DownPayment  float64         `json:"down_payment"`
}

// Engine runs projections. It holds no state between calls and is safe for
// concurrent use.
type Engine struct {
	logger    *zap.Logger
	scheduler *loans.AmortizationScheduleGenerator
}

// NewEngine creates a projection engine with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:    logger,
		scheduler: loans.NewAmortizationScheduleGenerator(logger),
	}
}

// Project validates the inputs and computes the full projection. Invalid
// inputs are rejected with ErrInvalidInputs before any scheduling happens.
func (e *Engine) Project(in Inputs) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	downPayment := in.DownPaymentAmount()
	loanAmount := in.LoanAmount()

	schedule, err := e.scheduler.GenerateSchedule(loans.LoanConfig{
		Principal:      loanAmount,
		InterestRate:   in.InterestRate,
		Years:          in.Years,
		PeriodsPerYear: in.PeriodsPerYear,
		Type:           in.LoanType,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate amortization schedule: %w", err)
	}

	n := len(schedule)
	rentRate := mathutil.MonthlyEquivalentRate(in.RentInflation)
	costRate := mathutil.MonthlyEquivalentRate(in.CostInflation)

	rent := GrowthSeries(in.MonthlyRent, rentRate, n)
	if in.ShortTermRental.Active() {
		e.logger.Debug(fmt.Sprintf("replacing ordinary rent with short-term income for %d of every %d months",
			in.ShortTermRental.MonthsPerYear, in.PeriodsPerYear),
			zap.String("op", "projection.Project"),
			zap.Float64("income", ShortTermMonthlyIncome(in.ShortTermRental.NightlyPrice, in.ShortTermRental.Occupancy)),
		)
		rent = BlendShortTermRental(rent, in.ShortTermRental, rentRate, in.PeriodsPerYear)
	}
	cost := GrowthSeries(in.Costs.Total(), costRate, n)

	monthly := make([]MonthlyRow, n)
	for i, payment := range schedule {
		value := PropertyValue(in.PurchasePrice, in.ValueGrowth, payment.Year)
		noi := rent[i] - cost[i]
		monthly[i] = MonthlyRow{
			Month:          payment.Period,
			Year:           payment.Year,
			Rent:           rent[i],
			OperatingCosts: cost[i],
			NOI:            noi,
			DebtService:    payment.Payment,
			CashFlow:       noi - payment.Payment,
			LoanBalance:    payment.RemainingPrincipal,
			PropertyValue:  value,
			Equity:         value - payment.RemainingPrincipal,
		}
	}

	yearly := AggregateYearly(monthly)
	metrics := ComputeMetrics(in.PurchasePrice, loanAmount, monthly[0], yearly[0])

	if yearly[0].DebtService < constants.DenominatorFloor {
		e.logger.Debug("year 1 debt service is zero; DSCR denominator floored",
			zap.String("op", "projection.Project"),
		)
	}

	return Result{
		Amortization: schedule,
		Monthly:      monthly,
		Yearly:       yearly,
		Metrics:      metrics,
		LoanAmount:   loanAmount,
		DownPayment:  downPayment,
	}, nil
}

// Project runs a projection without logging.
func Project(in Inputs) (Result, error) {
	return NewEngine(nil).Project(in)
}

// AggregateYearly groups consecutive monthly rows by year.
func AggregateYearly(monthly []MonthlyRow) []YearlyRow {
	var yearly []YearlyRow
	for _, row := range monthly {
		if len(yearly) == 0 || yearly[len(yearly)-1].Year != row.Year {
			yearly = append(yearly, YearlyRow{Year: row.Year})
		}
		current := &yearly[len(yearly)-1]
		current.Rent += row.Rent
		current.OperatingCosts += row.OperatingCosts
		current.NOI += row.NOI
		current.DebtService += row.DebtService
		current.CashFlow += row.CashFlow
		current.LoanBalance = row.LoanBalance
		current.PropertyValue = row.PropertyValue
		current.Equity = row.Equity
	}
	return yearly
}

// ComputeMetrics derives the summary metrics from the first month and year.
// Ratio denominators are floored rather than rejected.
func ComputeMetrics(purchasePrice, loanAmount float64, month1 MonthlyRow, year1 YearlyRow) Metrics {
	return Metrics{
		Month1CashFlow:   month1.CashFlow,
		Year1NOI:         year1.NOI,
		Year1DebtService: year1.DebtService,
		Year1DSCR:        mathutil.SafeDivide(year1.NOI, year1.DebtService),
		Year1CapRate:     mathutil.SafeDivide(year1.NOI, purchasePrice),
		LTVAtPurchase:    mathutil.SafeDivide(loanAmount, purchasePrice),
	}
}
