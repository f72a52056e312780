// Package validation provides input validation helpers shared by the
// calculator packages, the configuration loader, and the HTTP server.
//
// Calculators validate every field at their boundary and reject bad input
// with a *FieldError before any arithmetic runs. Inputs that pass validation
// are guaranteed finite and within the documented ranges, so downstream
// numeric failures indicate genuine overflow rather than bad input.
package validation

import (
	"fmt"
	"math"
	"strings"
)

// FieldError reports a rejected input field. Calculators return it from
// boundary checks so callers can map the failure back to the offending field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewFieldError builds a *FieldError with a formatted reason.
func NewFieldError(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Finite rejects NaN and infinite values.
func Finite(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewFieldError(field, "must be a finite number, got %v", value)
	}
	return nil
}

// Positive requires a finite value strictly greater than zero.
func Positive(field string, value float64) error {
	if err := Finite(field, value); err != nil {
		return err
	}
	if value <= 0 {
		return NewFieldError(field, "must be greater than zero, got %g", value)
	}
	return nil
}

// PositiveMax requires a finite value in (0, max].
func PositiveMax(field string, value, max float64) error {
	if err := Positive(field, value); err != nil {
		return err
	}
	if value > max {
		return NewFieldError(field, "must not exceed %g, got %g", max, value)
	}
	return nil
}

// NonNegative requires a finite value of zero or more.
func NonNegative(field string, value float64) error {
	if err := Finite(field, value); err != nil {
		return err
	}
	if value < 0 {
		return NewFieldError(field, "must not be negative, got %g", value)
	}
	return nil
}

// InRange requires a finite value within [lo, hi].
func InRange(field string, value, lo, hi float64) error {
	if err := Finite(field, value); err != nil {
		return err
	}
	if value < lo || value > hi {
		return NewFieldError(field, "must be between %g and %g, got %g", lo, hi, value)
	}
	return nil
}

// IntPositive requires an integer strictly greater than zero.
func IntPositive(field string, value int) error {
	if value <= 0 {
		return NewFieldError(field, "must be greater than zero, got %d", value)
	}
	return nil
}

// IntInRange requires an integer within [lo, hi].
func IntInRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return NewFieldError(field, "must be between %d and %d, got %d", lo, hi, value)
	}
	return nil
}

// OneOf requires the value to match one of the allowed strings exactly.
func OneOf(field, value string, allowed ...string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return NewFieldError(field, "must be one of %s, got %q", strings.Join(allowed, ", "), value)
}

// NotEmpty requires a non-blank string.
func NotEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewFieldError(field, "must not be empty")
	}
	return nil
}

// FirstError returns the first non-nil error, letting calculators chain their
// boundary checks in one statement.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
