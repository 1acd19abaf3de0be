// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/rental-forecast/internal/forecast"
	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/format"
	"github.com/iwvelando/rental-forecast/pkg/projection"
	"github.com/shopspring/decimal"
)

// Column headers of the exported tables, in column order.
var (
	AmortizationHeader = []string{"period", "year", "payment", "interest", "principal", "balance"}
	MonthlyHeader      = []string{"month", "year", "rent", "operating_costs", "noi", "debt_service", "cash_flow", "loan_balance", "property_value", "equity"}
	YearlyHeader       = []string{"year", "rent", "operating_costs", "noi", "debt_service", "cash_flow", "loan_balance", "property_value", "equity"}
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
// table selects which of the row tables is printed after the summary.
func PrettyFormat(w io.Writer, report forecast.Report, table, currency string) error {
	pw := &prettyWriter{w: w, currency: currency}
	result := report.Projection
	in := report.Inputs

	pw.printf("--- Property ---\n")
	pw.printf("Purchase price      %s\n", pw.money(in.PurchasePrice))
	pw.printf("Down payment        %s\n", pw.money(result.DownPayment))
	pw.printf("Loan amount         %s (%s, %d years, %d periods/year)\n",
		pw.money(result.LoanAmount), in.LoanType, in.Years, in.PeriodsPerYear)
	pw.printf("Total interest      %s\n", pw.money(report.TotalInterest))
	pw.printf("\n")

	pw.printf("--- Key metrics ---\n")
	pw.printf("Month 1 cash flow   %s\n", pw.money(result.Metrics.Month1CashFlow))
	pw.printf("Year 1 NOI          %s\n", pw.money(result.Metrics.Year1NOI))
	pw.printf("Year 1 debt service %s\n", pw.money(result.Metrics.Year1DebtService))
	pw.printf("Year 1 DSCR         %s\n", format.Ratio(result.Metrics.Year1DSCR))
	pw.printf("Year 1 cap rate     %s\n", format.Percent(result.Metrics.Year1CapRate))
	pw.printf("LTV at purchase     %s\n", format.Percent(result.Metrics.LTVAtPurchase))
	pw.printf("\n")

	switch table {
	case constants.TableAmortization:
		pw.printf("--- Amortization schedule ---\n")
		pw.row(AmortizationHeader)
		for _, p := range result.Amortization {
			pw.row([]string{strconv.Itoa(p.Period), strconv.Itoa(p.Year),
				format.NumericCurrency(p.Payment), format.NumericCurrency(p.Interest),
				format.NumericCurrency(p.Principal), format.NumericCurrency(p.RemainingPrincipal)})
		}
	case constants.TableMonthly:
		pw.printf("--- Monthly projection ---\n")
		pw.row(MonthlyHeader)
		for _, r := range result.Monthly {
			pw.row(append([]string{strconv.Itoa(r.Month), strconv.Itoa(r.Year)}, numericCells(monthlyValues(r))...))
		}
	default:
		pw.printf("--- Yearly projection ---\n")
		pw.row(YearlyHeader)
		for _, r := range result.Yearly {
			pw.row(append([]string{strconv.Itoa(r.Year)}, numericCells(yearlyValues(r))...))
		}
	}

	if report.Baseline != nil {
		pw.printf("\n--- Short-term rental vs. ordinary rent ---\n")
		pw.printf("Baseline month 1 cash flow %s\n", pw.money(report.Baseline.Metrics.Month1CashFlow))
		pw.printf("Baseline year 1 DSCR       %s\n", format.Ratio(report.Baseline.Metrics.Year1DSCR))
		pw.row([]string{"year", "cash_flow_uplift"})
		for _, d := range report.Uplift {
			pw.row([]string{strconv.Itoa(d.Year), format.NumericCurrency(d.CashFlow)})
		}
	}

	if len(report.Benchmarks) > 0 {
		pw.printf("\n--- Equity vs. benchmarks ---\n")
		header := []string{"year", "property_equity"}
		for _, b := range report.Benchmarks {
			header = append(header, fmt.Sprintf("%s (%s)", b.Name, format.Percent(b.AnnualReturn)))
		}
		pw.row(header)
		for i, row := range result.Yearly {
			cells := []string{strconv.Itoa(row.Year), format.NumericCurrency(row.Equity)}
			for _, b := range report.Benchmarks {
				cells = append(cells, format.NumericCurrency(b.Values[i].Value))
			}
			pw.row(cells)
		}
	}

	if len(report.Warnings) > 0 || len(report.Advisories) > 0 {
		pw.printf("\n--- Notes ---\n")
		for _, warning := range report.Warnings {
			pw.printf("warning: %s\n", warning)
		}
		for _, advisory := range report.Advisories {
			pw.printf("risk: %s\n", advisory)
		}
	}

	return pw.err
}

// CsvFormat outputs one table of the projection in comma-separated value
// format. Amounts are written with two fixed decimals.
func CsvFormat(w io.Writer, result projection.Result, table string) error {
	cw := csv.NewWriter(w)

	switch table {
	case constants.TableAmortization:
		if err := cw.Write(AmortizationHeader); err != nil {
			return err
		}
		for _, p := range result.Amortization {
			record := append([]string{strconv.Itoa(p.Period), strconv.Itoa(p.Year)},
				fixedCells([]float64{p.Payment, p.Interest, p.Principal, p.RemainingPrincipal})...)
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	case constants.TableMonthly:
		if err := cw.Write(MonthlyHeader); err != nil {
			return err
		}
		for _, r := range result.Monthly {
			record := append([]string{strconv.Itoa(r.Month), strconv.Itoa(r.Year)}, fixedCells(monthlyValues(r))...)
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	case constants.TableYearly:
		if err := cw.Write(YearlyHeader); err != nil {
			return err
		}
		for _, r := range result.Yearly {
			record := append([]string{strconv.Itoa(r.Year)}, fixedCells(yearlyValues(r))...)
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown table %q", table)
	}

	cw.Flush()
	return cw.Error()
}

// JSONFormat outputs the whole report as indented JSON.
func JSONFormat(w io.Writer, report forecast.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func monthlyValues(r projection.MonthlyRow) []float64 {
	return []float64{r.Rent, r.OperatingCosts, r.NOI, r.DebtService, r.CashFlow, r.LoanBalance, r.PropertyValue, r.Equity}
}

func yearlyValues(r projection.YearlyRow) []float64 {
	return []float64{r.Rent, r.OperatingCosts, r.NOI, r.DebtService, r.CashFlow, r.LoanBalance, r.PropertyValue, r.Equity}
}

func fixedCells(values []float64) []string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = decimal.NewFromFloat(v).StringFixed(2)
	}
	return cells
}

func numericCells(values []float64) []string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = format.NumericCurrency(v)
	}
	return cells
}

// prettyWriter keeps the first write error so the report can be printed
// without checking every line.
type prettyWriter struct {
	w        io.Writer
	currency string
	err      error
}

func (pw *prettyWriter) printf(layout string, args ...interface{}) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, layout, args...)
}

func (pw *prettyWriter) money(amount float64) string {
	return format.Currency(amount, pw.currency)
}

func (pw *prettyWriter) row(cells []string) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		if i == 0 {
			padded[i] = fmt.Sprintf("%-6s", cell)
			continue
		}
		padded[i] = fmt.Sprintf("%16s", cell)
	}
	pw.printf("%s\n", strings.TrimRight(strings.Join(padded, " | "), " "))
}
