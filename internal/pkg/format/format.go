// Package format holds the display helpers shared by storefront views:
// currency strings and rating stars.
package format

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Price renders an amount as a US-dollar display string with thousands
// grouping, e.g. 1299.99 becomes "$1,299.99".
func Price(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Stars renders a rating in [0, 5] as one filled star per whole point,
// plus a hollow star for a fractional remainder.
func Stars(rating float64) string {
	full := int(math.Floor(rating))
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("★", full))
	if rating > float64(full) && full < 5 {
		b.WriteString("☆")
	}
	return b.String()
}
