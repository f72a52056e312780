// Package constants provides shared constants for the finance-calculators application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the day count used for daily compounding
	DaysPerYear = 365

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent / 1 paisa)
	CurrencyTolerance = 0.01

	// RateEpsilon is the threshold below which a periodic rate is treated as
	// zero and annuity formulas degenerate to their linear forms.
	RateEpsilon = 1e-9
)

// Calculation bounds shared by the calculator packages. Inputs outside these
// ranges are rejected at the boundary rather than clamped.
const (
	// MaxPrincipal is the largest principal or invested amount accepted.
	MaxPrincipal = 1_000_000_000.0

	// MaxAnnualRatePercent is the largest annual rate accepted, in percent.
	MaxAnnualRatePercent = 100.0

	// MaxScheduleMonths caps amortization schedules and loan terms (50 years).
	MaxScheduleMonths = 600

	// MaxCompoundingPeriods caps frequency*years for compound growth to avoid
	// float overflow in the power term.
	MaxCompoundingPeriods = 1000

	// MaxSolverIterations bounds iterative root searches (IRR).
	MaxSolverIterations = 100

	// MaxTermRangeMonths caps the span evaluated by the term comparison.
	MaxTermRangeMonths = 120

	// MaxTenureYears caps year-denominated tenures (interest, deposits).
	MaxTenureYears = 100.0
)

// Calendar constants
const (
	// DateTimeLayout is the month label format accepted in schedule inputs and
	// used for schedule output rows.
	DateTimeLayout = "2006-01"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRateLimitCapacity is the default token-bucket size per client;
	// zero disables rate limiting.
	DefaultRateLimitCapacity = 60
)

// History store defaults
const (
	// DefaultHistoryLimit is the default number of snapshots returned by listings.
	DefaultHistoryLimit = 20

	// DefaultHistoryCapacity bounds the in-memory history backend.
	DefaultHistoryCapacity = 100
)

// Statutory defaults used by the tax and savings calculators. All of these can
// be overridden through configuration; the values here follow the published
// Indian tables current at the time of writing.
const (
	// DefaultCessPercent is the health and education cess applied on income tax.
	DefaultCessPercent = 4.0

	// DefaultPPFRatePercent is the published PPF annual rate.
	DefaultPPFRatePercent = 7.1

	// DefaultPPFLockInYears is the statutory PPF lock-in.
	DefaultPPFLockInYears = 15

	// DefaultPPFAnnualCap is the statutory yearly PPF contribution cap.
	DefaultPPFAnnualCap = 150000.0

	// MetroHRAPercent and NonMetroHRAPercent are the statutory basic-salary
	// percentages used by the HRA exemption rule.
	MetroHRAPercent    = 50.0
	NonMetroHRAPercent = 40.0
)
