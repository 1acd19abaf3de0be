// Package forecast defines the data structures related to a given forecast and
// includes functions for computing the forecasts.
package forecast

import (
	"fmt"

	"github.com/iwvelando/rental-forecast/internal/config"
	"github.com/iwvelando/rental-forecast/pkg/loans"
	"github.com/iwvelando/rental-forecast/pkg/mathutil"
	"github.com/iwvelando/rental-forecast/pkg/projection"
	"github.com/iwvelando/rental-forecast/pkg/validation"
	"go.uber.org/zap"
)

// Report holds all information related to one property forecast.
type Report struct {
	Inputs        projection.Inputs  `json:"inputs"`
	Projection    projection.Result  `json:"projection"`
	Baseline      *projection.Result `json:"baseline,omitempty"`
	Uplift        []YearDelta        `json:"short_term_uplift,omitempty"`
	Benchmarks    []Benchmark        `json:"benchmarks,omitempty"`
	TotalInterest float64            `json:"total_interest"`
	Warnings      []string           `json:"warnings,omitempty"`
	Advisories    []string           `json:"advisories,omitempty"`
}

// YearDelta is the difference in yearly cash flow between the primary
// projection and the baseline.
type YearDelta struct {
	Year     int     `json:"year"`
	CashFlow float64 `json:"cash_flow"`
}

// Benchmark compounds the initial equity at a fixed annual rate.
type Benchmark struct {
	Name         string           `json:"name"`
	AnnualReturn float64          `json:"annual_return"`
	Values       []BenchmarkPoint `json:"values"`
}

// BenchmarkPoint compares the benchmark value with the property equity at the
// end of a year.
type BenchmarkPoint struct {
	Year           int     `json:"year"`
	Value          float64 `json:"value"`
	PropertyEquity float64 `json:"property_equity"`
}

// GetForecast converts the configuration, runs the projection and collects
// the comparisons around it.
func GetForecast(logger *zap.Logger, conf config.Configuration) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	in, err := conf.ToInputs()
	if err != nil {
		return Report{}, fmt.Errorf("failed to convert configuration: %w", err)
	}

	report := Report{
		Inputs:   in,
		Warnings: conf.ValidateConfiguration(),
	}
	for _, warning := range report.Warnings {
		logger.Warn(warning, zap.String("op", "forecast.GetForecast"))
	}

	engine := projection.NewEngine(logger)
	report.Projection, err = engine.Project(in)
	if err != nil {
		return Report{}, err
	}

	if in.ShortTermRental.Active() {
		logger.Debug("computing baseline without short-term rental",
			zap.String("op", "forecast.GetForecast"),
		)
		baseline, err := engine.Project(in.WithoutShortTermRental())
		if err != nil {
			return Report{}, fmt.Errorf("failed to compute baseline: %w", err)
		}
		report.Baseline = &baseline
		report.Uplift = CashFlowDelta(report.Projection.Yearly, baseline.Yearly)
	}

	for _, b := range conf.Benchmarks {
		name := b.Name
		if name == "" {
			name = "unnamed"
		}
		report.Benchmarks = append(report.Benchmarks,
			CompoundEquity(name, report.Projection.DownPayment, conf.BenchmarkRate(b), report.Projection.Yearly))
	}

	report.TotalInterest = loans.TotalInterest(report.Projection.Amortization)
	report.Advisories = validation.AssessRisk(report.Projection)

	return report, nil
}

// CompoundEquity grows the initial equity by rate once per projection year.
func CompoundEquity(name string, initial, rate float64, yearly []projection.YearlyRow) Benchmark {
	benchmark := Benchmark{
		Name:         name,
		AnnualReturn: rate,
		Values:       make([]BenchmarkPoint, len(yearly)),
	}
	for i, row := range yearly {
		benchmark.Values[i] = BenchmarkPoint{
			Year:           row.Year,
			Value:          mathutil.Grow(initial, rate, row.Year),
			PropertyEquity: row.Equity,
		}
	}
	return benchmark
}

// CashFlowDelta subtracts the baseline yearly cash flow from the primary one.
// Years missing from either side are skipped.
func CashFlowDelta(primary, baseline []projection.YearlyRow) []YearDelta {
	n := len(primary)
	if len(baseline) < n {
		n = len(baseline)
	}
	deltas := make([]YearDelta, n)
	for i := 0; i < n; i++ {
		deltas[i] = YearDelta{
			Year:     primary[i].Year,
			CashFlow: primary[i].CashFlow - baseline[i].CashFlow,
		}
	}
	return deltas
}
