// Package schedule provides calendar labeling for period-indexed schedules.
//
// Amortization and deposit schedules are computed in terms of period numbers
// (1, 2, 3, ...). When a caller supplies a starting month, the helpers here
// turn period numbers into YYYY-MM labels and contribution years into Indian
// fiscal year labels.
package schedule

import (
	"fmt"
	"time"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

const (
	// MonthLayout is the format expected for starting months and is also the
	// output label format.
	MonthLayout = constants.DateTimeLayout
)

// MustParseMonth parses a YYYY-MM label and panics on error.
// This is intended for use in tests where the label is known to be valid.
func MustParseMonth(label string) time.Time {
	t, err := time.Parse(MonthLayout, label)
	if err != nil {
		panic(err)
	}
	return t
}

// ValidateMonth checks that label is a well-formed YYYY-MM month.
func ValidateMonth(label string) error {
	if _, err := time.Parse(MonthLayout, label); err != nil {
		return fmt.Errorf("invalid month %q: expected YYYY-MM: %w", label, err)
	}
	return nil
}

// MonthLabel returns the month label offset by the given number of months
// relative to the starting month.
func MonthLabel(start string, months int) (string, error) {
	t, err := time.Parse(MonthLayout, start)
	if err != nil {
		return "", fmt.Errorf("invalid month %q: expected YYYY-MM: %w", start, err)
	}
	return t.AddDate(0, months, 0).Format(MonthLayout), nil
}

// MonthLabels returns n consecutive month labels beginning at start.
func MonthLabels(start string, n int) ([]string, error) {
	t, err := time.Parse(MonthLayout, start)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: expected YYYY-MM: %w", start, err)
	}
	labels := make([]string, 0, n)
	for i := 0; i < n; i++ {
		labels = append(labels, t.AddDate(0, i, 0).Format(MonthLayout))
	}
	return labels, nil
}

// MonthBefore returns true if the first month is strictly before the second.
func MonthBefore(first, second string) (bool, error) {
	firstT, err := time.Parse(MonthLayout, first)
	if err != nil {
		return false, fmt.Errorf("invalid month %q: expected YYYY-MM: %w", first, err)
	}
	secondT, err := time.Parse(MonthLayout, second)
	if err != nil {
		return false, fmt.Errorf("invalid month %q: expected YYYY-MM: %w", second, err)
	}
	return firstT.Before(secondT), nil
}

// FiscalYearLabel returns the Indian fiscal year label for the given offset
// from a starting year, e.g. FiscalYearLabel(2026, 0) == "2026-27".
func FiscalYearLabel(startYear, offset int) string {
	year := startYear + offset
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
