package schedule

import (
	"testing"
)

func TestMonthLabel(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		months   int
		expected string
		wantErr  bool
	}{
		{
			name:     "Zero offset",
			start:    "2026-04",
			months:   0,
			expected: "2026-04",
		},
		{
			name:     "Within year",
			start:    "2026-04",
			months:   5,
			expected: "2026-09",
		},
		{
			name:     "Cross year boundary",
			start:    "2026-10",
			months:   4,
			expected: "2027-02",
		},
		{
			name:     "Multiple years",
			start:    "2026-01",
			months:   24,
			expected: "2028-01",
		},
		{
			name:     "Backward offset",
			start:    "2026-01",
			months:   -2,
			expected: "2025-11",
		},
		{
			name:    "Invalid start",
			start:   "April 2026",
			months:  1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MonthLabel(tt.start, tt.months)
			if tt.wantErr {
				if err == nil {
					t.Errorf("MonthLabel() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("MonthLabel() error = %v", err)
				return
			}
			if result != tt.expected {
				t.Errorf("MonthLabel() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestMonthLabels(t *testing.T) {
	labels, err := MonthLabels("2026-11", 4)
	if err != nil {
		t.Fatalf("MonthLabels() error = %v", err)
	}
	expected := []string{"2026-11", "2026-12", "2027-01", "2027-02"}
	if len(labels) != len(expected) {
		t.Fatalf("MonthLabels() returned %d labels, expected %d", len(labels), len(expected))
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("MonthLabels()[%d] = %s, expected %s", i, labels[i], expected[i])
		}
	}
}

func TestValidateMonth(t *testing.T) {
	if err := ValidateMonth("2026-04"); err != nil {
		t.Errorf("ValidateMonth(2026-04) unexpected error = %v", err)
	}
	for _, label := range []string{"2026-13", "2026", "26-04", "2026/04", ""} {
		if err := ValidateMonth(label); err == nil {
			t.Errorf("ValidateMonth(%q) expected error but got none", label)
		}
	}
}

func TestMonthBefore(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		expected bool
	}{
		{
			name:     "Different years",
			first:    "2025-12",
			second:   "2026-01",
			expected: true,
		},
		{
			name:     "Same year different months",
			first:    "2026-01",
			second:   "2026-06",
			expected: true,
		},
		{
			name:     "Reverse order",
			first:    "2026-06",
			second:   "2026-01",
			expected: false,
		},
		{
			name:     "Equal months",
			first:    "2026-06",
			second:   "2026-06",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MonthBefore(tt.first, tt.second)
			if err != nil {
				t.Errorf("MonthBefore() error = %v", err)
				return
			}
			if result != tt.expected {
				t.Errorf("MonthBefore() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestMustParseMonthPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected MustParseMonth to panic with invalid label")
		}
	}()

	MustParseMonth("invalid-month")
}

func TestFiscalYearLabel(t *testing.T) {
	tests := []struct {
		startYear int
		offset    int
		expected  string
	}{
		{2026, 0, "2026-27"},
		{2026, 1, "2027-28"},
		{2026, 14, "2040-41"},
		{1999, 0, "1999-00"},
		{2099, 0, "2099-00"},
	}

	for _, tt := range tests {
		if got := FiscalYearLabel(tt.startYear, tt.offset); got != tt.expected {
			t.Errorf("FiscalYearLabel(%d, %d) = %s, expected %s", tt.startYear, tt.offset, got, tt.expected)
		}
	}
}

func TestMonthRoundTrip(t *testing.T) {
	baseMonth := "2026-01"

	future, err := MonthLabel(baseMonth, 6)
	if err != nil {
		t.Fatalf("MonthLabel forward failed: %v", err)
	}

	past, err := MonthLabel(future, -6)
	if err != nil {
		t.Fatalf("MonthLabel backward failed: %v", err)
	}

	if past != baseMonth {
		t.Errorf("Round trip month operation failed: started with %s, ended with %s", baseMonth, past)
	}
}
