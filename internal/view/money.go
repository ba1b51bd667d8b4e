package view

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "CA$",
	"LKR": "LKR ",
	"CHF": "CHF ",
}

var grouping = message.NewPrinter(language.English)

// FormatCurrency renders a whole-unit price with thousands grouping, e.g.
// "$1,200". Unknown codes are printed as a prefix: "NZD 90".
func FormatCurrency(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = "USD"
	}
	sym, ok := currencySymbols[code]
	if !ok {
		sym = code + " "
	}
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	return sign + sym + grouping.Sprintf("%d", n)
}
