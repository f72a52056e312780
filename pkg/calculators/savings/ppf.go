package savings

import (
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/schedule"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// PPFInput holds the parameters of a public provident fund account. Zero
// AnnualRate and AnnualCap select the published statutory defaults.
type PPFInput struct {
	YearlyContribution float64 `json:"yearlyContribution"`
	AnnualRate         float64 `json:"annualRate,omitempty"`
	Years              int     `json:"years"`
	AnnualCap          float64 `json:"annualCap,omitempty"`
	StartYear          int     `json:"startYear,omitempty"`
}

// PPFYearEntry is one financial year of a PPF projection.
type PPFYearEntry struct {
	Year         int     `json:"year"`
	Label        string  `json:"label,omitempty"`
	Contribution float64 `json:"contribution"`
	Interest     float64 `json:"interest"`
	Balance      float64 `json:"balance"`
}

// PPFResult extends the shared maturity summary with the year-by-year ledger.
type PPFResult struct {
	Result
	Schedule []PPFYearEntry `json:"schedule"`
}

// PPF projects a public provident fund balance. Contributions are deposited at
// the start of each financial year and interest is credited annually; the
// statutory lock-in means projections shorter than fifteen years are rejected.
func PPF(in PPFInput) (PPFResult, error) {
	rate := in.AnnualRate
	if rate == 0 {
		rate = constants.DefaultPPFRatePercent
	}
	annualCap := in.AnnualCap
	if annualCap == 0 {
		annualCap = constants.DefaultPPFAnnualCap
	}

	if err := validation.FirstError(
		validation.PositiveMax("yearlyContribution", in.YearlyContribution, annualCap),
		validation.InRange("annualRate", rate, 0, constants.MaxAnnualRatePercent),
		validation.IntInRange("years", in.Years, constants.DefaultPPFLockInYears, 50),
	); err != nil {
		return PPFResult{}, err
	}
	if in.StartYear != 0 {
		if err := validation.IntInRange("startYear", in.StartYear, 1900, 2200); err != nil {
			return PPFResult{}, err
		}
	}

	annualRate := rate / constants.PercentageMultiplier
	entries := make([]PPFYearEntry, 0, in.Years)
	balance := 0.0
	for year := 1; year <= in.Years; year++ {
		opening := balance + in.YearlyContribution
		interest := opening * annualRate
		balance = opening + interest

		entry := PPFYearEntry{
			Year:         year,
			Contribution: in.YearlyContribution,
			Interest:     numeric.Round(interest),
			Balance:      numeric.Round(balance),
		}
		if in.StartYear != 0 {
			entry.Label = schedule.FiscalYearLabel(in.StartYear, year-1)
		}
		entries = append(entries, entry)
	}

	invested := in.YearlyContribution * float64(in.Years)
	return PPFResult{
		Result: Result{
			MaturityAmount: numeric.Round(balance),
			TotalInvested:  numeric.Round(invested),
			TotalGains:     numeric.Round(balance - invested),
		},
		Schedule: entries,
	}, nil
}
