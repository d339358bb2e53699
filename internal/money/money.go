// Package money formats USD minor units for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders cents as a US-locale dollar string, e.g.
// 17500 -> "$175.00", 1234567 -> "$12,345.67". Catalog prices are
// non-negative by invariant; a negative input keeps its sign.
func FormatPrice(priceCents int64) string {
	sign := ""
	if priceCents < 0 {
		sign = "-"
		priceCents = -priceCents
	}
	return printer.Sprintf("%s$%d.%02d", sign, priceCents/100, priceCents%100)
}
