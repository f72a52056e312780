// Package numeric provides guarded arithmetic primitives shared by the
// calculator packages. All operations are strict: degenerate cases surface as
// typed errors instead of NaN, Infinity, or silent zero fallbacks, so callers
// can tell garbage input apart from a legitimately zero result. Permissive
// behavior is available through the ...Or wrappers for callers that opt into
// a fallback value.
package numeric

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

var (
	// ErrNotANumber indicates input that cannot be read as a number.
	ErrNotANumber = errors.New("numeric: not a number")

	// ErrNonFinite indicates an operand or result that is NaN or infinite.
	ErrNonFinite = errors.New("numeric: non-finite value")

	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrDomain indicates arguments outside a function's real domain, such as
	// a negative base raised to a fractional exponent.
	ErrDomain = errors.New("numeric: domain error")
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Add returns a+b, guarding operands and result against non-finite values.
func Add(a, b float64) (float64, error) {
	if !isFinite(a) || !isFinite(b) {
		return 0, ErrNonFinite
	}
	sum := a + b
	if !isFinite(sum) {
		return 0, fmt.Errorf("%w: %g + %g", ErrNonFinite, a, b)
	}
	return sum, nil
}

// Subtract returns a-b with the same guards as Add.
func Subtract(a, b float64) (float64, error) {
	if !isFinite(a) || !isFinite(b) {
		return 0, ErrNonFinite
	}
	diff := a - b
	if !isFinite(diff) {
		return 0, fmt.Errorf("%w: %g - %g", ErrNonFinite, a, b)
	}
	return diff, nil
}

// Multiply returns a*b, guarding against overflow to infinity.
func Multiply(a, b float64) (float64, error) {
	if !isFinite(a) || !isFinite(b) {
		return 0, ErrNonFinite
	}
	product := a * b
	if !isFinite(product) {
		return 0, fmt.Errorf("%w: %g * %g overflows", ErrNonFinite, a, b)
	}
	return product, nil
}

// Divide returns a/b. A zero divisor yields ErrDivisionByZero rather than
// +/-Inf or NaN; an overflowing quotient yields ErrNonFinite.
func Divide(a, b float64) (float64, error) {
	if !isFinite(a) || !isFinite(b) {
		return 0, ErrNonFinite
	}
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	quotient := a / b
	if !isFinite(quotient) {
		return 0, fmt.Errorf("%w: %g / %g", ErrNonFinite, a, b)
	}
	return quotient, nil
}

// Power returns base**exponent. A negative base with a fractional exponent is
// rejected with ErrDomain (math.Pow would return NaN); overflow is rejected
// with ErrNonFinite.
func Power(base, exponent float64) (float64, error) {
	if !isFinite(base) || !isFinite(exponent) {
		return 0, ErrNonFinite
	}
	if base < 0 && exponent != math.Trunc(exponent) {
		return 0, fmt.Errorf("%w: negative base %g with fractional exponent %g", ErrDomain, base, exponent)
	}
	result := math.Pow(base, exponent)
	if !isFinite(result) {
		return 0, fmt.Errorf("%w: %g^%g overflows", ErrNonFinite, base, exponent)
	}
	return result, nil
}

// AddOr, SubtractOr, MultiplyOr, DivideOr, and PowerOr degrade to fallback on
// any error. They exist for display-oriented callers; the calculator packages
// use the strict forms.

func AddOr(a, b, fallback float64) float64 {
	v, err := Add(a, b)
	if err != nil {
		return fallback
	}
	return v
}

func SubtractOr(a, b, fallback float64) float64 {
	v, err := Subtract(a, b)
	if err != nil {
		return fallback
	}
	return v
}

func MultiplyOr(a, b, fallback float64) float64 {
	v, err := Multiply(a, b)
	if err != nil {
		return fallback
	}
	return v
}

func DivideOr(a, b, fallback float64) float64 {
	v, err := Divide(a, b)
	if err != nil {
		return fallback
	}
	return v
}

func PowerOr(base, exponent, fallback float64) float64 {
	v, err := Power(base, exponent)
	if err != nil {
		return fallback
	}
	return v
}

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons and for monetary outputs.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundTo rounds a value to the given number of decimal digits.
func RoundTo(val float64, digits int) float64 {
	if digits < 0 {
		digits = 0
	}
	pow := math.Pow(10, float64(digits))
	return math.Round(val*pow) / pow
}

// IsZero checks if a value is effectively zero (within currency tolerance).
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsEffectivelyZero checks if a value is within epsilon of zero. It is used to
// choose between annuity formulas and their degenerate zero-rate linear forms.
func IsEffectivelyZero(val, epsilon float64) bool {
	if epsilon <= 0 {
		epsilon = constants.RateEpsilon
	}
	return math.Abs(val) <= epsilon
}

// WithinTolerance checks if two values are within a specified tolerance.
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Clamp restricts a value to the inclusive range [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Percentage calculates what percentage value is of total; zero total yields 0.
func Percentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value.
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
