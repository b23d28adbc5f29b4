package advisor

import (
	"github.com/cediwise/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money formats an amount with the symbol of its currency and thousands
// separators, e.g. "₵1,250.00".
func Money(currency string, amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	return sign + types.CurrencySymbol(currency) + printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}

// signed formats d with the given number of decimal places and a leading
// "+" for positive values.
func signed(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	if d.Round(places).IsPositive() {
		return "+" + s
	}

	return s
}

// percentOf returns part as percent of whole with one decimal place.
func percentOf(part, whole decimal.Decimal) string {
	if !whole.IsPositive() {
		return "n/a"
	}

	return part.Mul(hundred).Div(whole).StringFixed(1) + "%"
}
