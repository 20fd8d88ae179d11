package calc

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var pesoPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount as Philippine pesos with thousands
// separators, e.g. 1234567.5 -> "₱1,234,567.5".
func FormatCurrency(amount float64) string {
	return pesoPrinter.Sprintf("₱%v", number.Decimal(amount))
}
