// Package format provides currency display helpers for calculator results.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Supported ISO 4217 currency codes.
const (
	INR = "INR"
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
)

var symbols = map[string]string{
	INR: "₹",
	USD: "$",
	EUR: "€",
	GBP: "£",
}

// Currency returns an INR currency string with Indian digit grouping
// (e.g., "-₹12,34,567.89").
func Currency(amount float64) string {
	return CurrencyIn(amount, INR)
}

// CurrencyIn returns amount formatted for the given currency code. INR groups
// the last three digits and then pairs; other codes group by thousands.
// Unknown codes are used as a literal prefix.
func CurrencyIn(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	symbol, ok := symbols[code]
	if !ok {
		symbol = code + " "
	}
	formatted := formatPositiveCurrency(math.Abs(amount), code == INR)
	if amount < 0 {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with
// thousands separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount), false)
	return sign + formatted
}

// Compact abbreviates large INR amounts with lakh and crore units
// (e.g., "₹1.25Cr", "₹3.40L"). Amounts below one lakh format as Currency.
func Compact(amount float64) string {
	abs := math.Abs(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1e7:
		return fmt.Sprintf("%s₹%.2fCr", sign, abs/1e7)
	case abs >= 1e5:
		return fmt.Sprintf("%s₹%.2fL", sign, abs/1e5)
	default:
		return Currency(amount)
	}
}

func formatPositiveCurrency(value float64, indian bool) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if indian {
		intPart = groupIndian(intPart)
	} else {
		intPart = groupThousands(intPart)
	}

	return intPart + "." + decPart
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}

// groupIndian separates the last three digits, then every remaining pair,
// producing groupings like 12,34,567.
func groupIndian(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	head := intPart[:len(intPart)-3]
	tail := intPart[len(intPart)-3:]
	var builder strings.Builder
	for i, digit := range head {
		if i > 0 && (len(head)-i)%2 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	builder.WriteByte(',')
	builder.WriteString(tail)
	return builder.String()
}
