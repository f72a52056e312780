package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a float out of raw form input. It tolerates the noise real
// users type into amount fields: surrounding whitespace, grouping commas
// (both 1,234,567 and Indian 12,34,567 placement), currency symbols, digit
// underscores, and a single trailing percent sign on rate fields. Commas are
// always treated as grouping separators, never as a decimal point.
//
// Parse never panics and never returns NaN or Infinity: unreadable input
// yields ErrNotANumber and non-finite values yield ErrNonFinite.
func Parse(s string) (float64, error) {
	cleaned := normalizeNumber(s)
	if cleaned == "" || cleaned == "+" || cleaned == "-" || cleaned == "." ||
		cleaned == "+." || cleaned == "-." {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNonFinite, s)
	}
	return val, nil
}

// ParseOr parses like Parse but degrades to fallback on any error.
func ParseOr(s string, fallback float64) float64 {
	val, err := Parse(s)
	if err != nil {
		return fallback
	}
	return val
}

// currencySymbols are stripped wherever they appear in the input.
var currencySymbols = map[rune]bool{
	'₹': true,
	'$': true,
	'€': true,
	'£': true,
	'¥': true,
}

func normalizeNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '+' || r == '-' || r == 'e' || r == 'E':
			b.WriteRune(r)
		case r == ',' || r == '_':
			// grouping separators
		case unicode.IsSpace(r):
			// includes NBSP and narrow NBSP used by locale formatters
		case currencySymbols[r]:
			// stripped
		default:
			// Preserve unexpected runes so ParseFloat rejects the input
			// instead of silently reinterpreting it.
			b.WriteRune(r)
		}
	}
	return b.String()
}
