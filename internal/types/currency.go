package types

import (
	"strings"

	"golang.org/x/text/currency"
)

var symbols = map[string]string{
	"USD": "$",
	"GHS": "₵",
	"EUR": "€",
	"GBP": "£",
	"NGN": "₦",
}

// ValidCurrency reports if code is a recognized ISO 4217 currency code.
func ValidCurrency(code string) bool {
	if len(code) != 3 || strings.ToUpper(code) != code {
		return false
	}

	_, err := currency.ParseISO(code)
	return err == nil
}

// CurrencySymbol returns the display symbol for a currency code.
//
// For currencies without a known symbol, the code followed by a space
// is returned.
func CurrencySymbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}

	if code == "" {
		return ""
	}

	return code + " "
}
