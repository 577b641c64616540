package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The storefront prices everything in rupees, formatted the way the product
// pages show them: grouped digits, two decimals, ₹ prefix.

var printer = message.NewPrinter(language.English)

// FormatAmount renders a single monetary value, e.g. ₹1,299.50.
func FormatAmount(v float64) string {
	return printer.Sprintf("₹%.2f", Round2(v))
}

// FormatShipping renders the shipping figure, showing "Free" for zero the
// same way the cart summary does.
func FormatShipping(v float64) string {
	if Round2(v) == 0 {
		return "Free"
	}
	return FormatAmount(v)
}
