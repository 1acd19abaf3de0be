// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/rental-forecast/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateTable checks if the table name is one of the exportable tables.
func ValidateTable(table string) error {
	switch table {
	case constants.TableAmortization, constants.TableMonthly, constants.TableYearly:
		return nil
	}
	return fmt.Errorf("expected table of %s, %s or %s, got %s",
		constants.TableAmortization, constants.TableMonthly, constants.TableYearly, table)
}
