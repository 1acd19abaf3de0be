// Package format renders amounts and ratios for human readers.
package format

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency renders amount in the given ISO 4217 currency using its symbol,
// separators and minor units (e.g., "-$1,234.56" for USD). Codes are
// case-insensitive. Unknown codes use two minor units with the code appended
// as a suffix ("1,234.56XYZ"); an empty code prints no symbol.
func Currency(amount float64, code string) string {
	return money.New(minorUnits(amount, code), code).Display()
}

// NumericCurrency returns a currency string without a currency symbol but with
// separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	amount = decimal.NewFromFloat(amount).Round(2).InexactFloat64()
	return printer.Sprintf("%.2f", amount)
}

// Percent renders a fraction as a percentage with two decimals ("5.27%").
func Percent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*constants.PercentageMultiplier)
}

// Ratio renders a coverage ratio such as DSCR ("0.85x"). Ratios too large to
// be meaningful are shown as "n/a".
func Ratio(value float64) string {
	if math.IsInf(value, 0) || math.IsNaN(value) || value > 1e6 {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", value)
}

func minorUnits(amount float64, code string) int64 {
	fraction := 2
	if cur := money.GetCurrency(code); cur != nil {
		fraction = cur.Fraction
	}
	return decimal.NewFromFloat(amount).Shift(int32(fraction)).Round(0).IntPart()
}
