// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config.
package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for rental-forecast. Rates and
// occupancy are expressed in percent (6.0 means 6%).
type Configuration struct {
	Property        Property        `yaml:"property" json:"property"`
	Financing       Financing       `yaml:"financing" json:"financing"`
	Costs           Costs           `yaml:"costs" json:"costs"`
	Income          Income          `yaml:"income" json:"income"`
	Growth          Growth          `yaml:"growth" json:"growth"`
	ShortTermRental ShortTermRental `yaml:"shortTermRental" json:"shortTermRental"`
	Benchmarks      []Benchmark     `yaml:"benchmarks,omitempty" json:"benchmarks,omitempty"`
	Logging         LoggingConfig   `yaml:"logging,omitempty" json:"logging,omitempty"`
	Output          OutputConfig    `yaml:"output,omitempty" json:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" json:"level,omitempty"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" json:"format,omitempty"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" json:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty" json:"format,omitempty"`     // pretty, csv, json
	Table    string `yaml:"table,omitempty" json:"table,omitempty"`       // amortization, monthly, yearly
	Currency string `yaml:"currency,omitempty" json:"currency,omitempty"` // ISO 4217 code
}

// Property describes the purchased property.
type Property struct {
	PurchasePrice float64 `yaml:"purchasePrice" json:"purchasePrice"`
}

// Financing describes the down payment and the loan.
type Financing struct {
	DownPayment          float64 `yaml:"downPayment" json:"downPayment"`
	DownPaymentIsPercent bool    `yaml:"downPaymentIsPercent" json:"downPaymentIsPercent"`
	InterestRate         float64 `yaml:"interestRate" json:"interestRate"`
	Years                int     `yaml:"years" json:"years"`
	PeriodsPerYear       int     `yaml:"periodsPerYear" json:"periodsPerYear"`
	LoanType             string  `yaml:"loanType" json:"loanType"` // annuity, serial
}

// Costs holds the fixed monthly operating costs.
type Costs struct {
	CommonCharges float64 `yaml:"commonCharges" json:"commonCharges"`
	MunicipalFees float64 `yaml:"municipalFees" json:"municipalFees"`
	PropertyTax   float64 `yaml:"propertyTax" json:"propertyTax"`
	Maintenance   float64 `yaml:"maintenance" json:"maintenance"`
	Insurance     float64 `yaml:"insurance" json:"insurance"`
	Other         float64 `yaml:"other" json:"other"`
}

// Income holds the ordinary monthly rent.
type Income struct {
	MonthlyRent float64 `yaml:"monthlyRent" json:"monthlyRent"`
}

// Growth holds the annual growth rates.
type Growth struct {
	RentInflation float64 `yaml:"rentInflation" json:"rentInflation"`
	CostInflation float64 `yaml:"costInflation" json:"costInflation"`
	ValueGrowth   float64 `yaml:"valueGrowth" json:"valueGrowth"`
}

// ShortTermRental holds the optional nightly letting parameters.
type ShortTermRental struct {
	Enabled             bool    `yaml:"enabled" json:"enabled"`
	MonthsPerYear       int     `yaml:"monthsPerYear" json:"monthsPerYear"`
	NightlyPrice        float64 `yaml:"nightlyPrice" json:"nightlyPrice"`
	Occupancy           float64 `yaml:"occupancy" json:"occupancy"`
	FollowRentInflation bool    `yaml:"followRentInflation" json:"followRentInflation"`
}

// Benchmark is an alternative investment of the initial equity.
type Benchmark struct {
	Name             string  `yaml:"name" json:"name"`
	AnnualReturn     float64 `yaml:"annualReturn" json:"annualReturn"`
	UseCostInflation bool    `yaml:"useCostInflation" json:"useCostInflation"`
}

// setDefaults registers the default scenario so every key is known to viper
// and can be overridden from the environment.
func setDefaults(v *viper.Viper) {
	v.SetDefault("property.purchasePrice", 5000000.0)

	v.SetDefault("financing.downPayment", 20.0)
	v.SetDefault("financing.downPaymentIsPercent", true)
	v.SetDefault("financing.interestRate", 6.0)
	v.SetDefault("financing.years", 25)
	v.SetDefault("financing.periodsPerYear", constants.DefaultPeriodsPerYear)
	v.SetDefault("financing.loanType", constants.LoanTypeAnnuity)

	v.SetDefault("costs.commonCharges", 1500.0)
	v.SetDefault("costs.municipalFees", 600.0)
	v.SetDefault("costs.propertyTax", 0.0)
	v.SetDefault("costs.maintenance", 800.0)
	v.SetDefault("costs.insurance", 400.0)
	v.SetDefault("costs.other", 0.0)

	v.SetDefault("income.monthlyRent", 25000.0)

	v.SetDefault("growth.rentInflation", 2.5)
	v.SetDefault("growth.costInflation", 2.0)
	v.SetDefault("growth.valueGrowth", 3.0)

	v.SetDefault("shortTermRental.enabled", false)
	v.SetDefault("shortTermRental.monthsPerYear", 0)
	v.SetDefault("shortTermRental.nightlyPrice", 3000.0)
	v.SetDefault("shortTermRental.occupancy", 75.0)
	v.SetDefault("shortTermRental.followRentInflation", false)

	v.SetDefault("benchmarks", []map[string]interface{}{
		{"name": constants.DefaultInflationBenchmarkName, "annualReturn": 2.0, "useCostInflation": true},
		{"name": constants.DefaultIndexBenchmarkName, "annualReturn": constants.DefaultIndexBenchmarkReturn, "useCostInflation": false},
	})

	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.table", constants.TableYearly)
	v.SetDefault("output.currency", constants.DefaultCurrency)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromBytes loads a configuration held in memory. configType
// is any type understood by viper, typically "yaml" or "json".
func LoadConfigurationFromBytes(data []byte, configType string) (*Configuration, error) {
	v := newViper()
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}
