// Package constants provides shared constants for the rental-forecast application.
package constants

import "time"

// Calendar constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// NightsPerMonth is the fixed number of nights assumed for short-term
	// rental income regardless of the actual calendar month.
	NightsPerMonth = 30.0

	// DefaultPeriodsPerYear is the default number of loan payments per year
	DefaultPeriodsPerYear = 12
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DenominatorFloor is the smallest denominator used when computing ratio
	// metrics such as DSCR, cap rate and LTV.
	DenominatorFloor = 1e-9

	// DefaultCurrency is the ISO 4217 code used when rendering amounts
	DefaultCurrency = "NOK"
)

// Loan type constants
const (
	// LoanTypeAnnuity is a loan with a constant total payment per period
	LoanTypeAnnuity = "annuity"

	// LoanTypeSerial is a loan with a constant principal repayment per period
	LoanTypeSerial = "serial"
)

// Risk thresholds
const (
	// DSCRFloor is the coverage below which NOI does not cover debt service
	DSCRFloor = 1.0

	// DSCRWarning is the coverage below which the margin is considered thin
	DSCRWarning = 1.20
)

// Benchmark defaults
const (
	// DefaultInflationBenchmarkName labels the benchmark tracking cost inflation
	DefaultInflationBenchmarkName = "Inflation"

	// DefaultIndexBenchmarkName labels the equity index benchmark
	DefaultIndexBenchmarkName = "Index fund"

	// DefaultIndexBenchmarkReturn is the annual return of the index benchmark in percent
	DefaultIndexBenchmarkReturn = 10.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Output table constants
const (
	// TableAmortization selects the loan amortization schedule
	TableAmortization = "amortization"

	// TableMonthly selects the monthly projection rows
	TableMonthly = "monthly"

	// TableYearly selects the yearly projection rows
	TableYearly = "yearly"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "RENTAL_FORECAST"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultServerTimeout bounds request reads and response writes
	DefaultServerTimeout = 30 * time.Second

	// DefaultShutdownTimeout is how long in-flight requests get on shutdown
	DefaultShutdownTimeout = 10 * time.Second
)
