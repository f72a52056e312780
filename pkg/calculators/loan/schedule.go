package loan

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/numeric"
	"github.com/iwvelando/finance-calculators/pkg/schedule"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// ErrNeverAmortizes indicates the payment never retires the balance within the
// schedule cap. It is reported instead of a silently truncated schedule.
var ErrNeverAmortizes = errors.New("loan: balance does not amortize within the schedule cap")

// Prepayment is a one-time extra principal payment in a specific period.
type Prepayment struct {
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

// ScheduleInput extends Input with prepayment and calendar labeling options.
// PaymentOverride replaces the computed EMI when greater than zero; the
// schedule then runs until payoff rather than for TermMonths.
type ScheduleInput struct {
	Input
	ExtraMonthly    float64      `json:"extraMonthly,omitempty"`
	ExtraYearly     float64      `json:"extraYearly,omitempty"`
	Prepayments     []Prepayment `json:"prepayments,omitempty"`
	PaymentOverride float64      `json:"paymentOverride,omitempty"`
	StartMonth      string       `json:"startMonth,omitempty"`
}

// Entry holds the values for a given payment period. Amounts are unrounded;
// rendering layers round for display.
type Entry struct {
	Period    int     `json:"period"`
	Label     string  `json:"label,omitempty"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Extra     float64 `json:"extra,omitempty"`
	Balance   float64 `json:"balance"`
}

// ScheduleResult holds a complete amortization schedule with its aggregates.
// MonthsSaved and InterestSaved compare against the no-prepayment baseline and
// are zero when the schedule ran at least as long as the baseline.
type ScheduleResult struct {
	EMI           float64 `json:"emi"`
	Entries       []Entry `json:"entries"`
	TotalPayment  float64 `json:"totalPayment"`
	TotalInterest float64 `json:"totalInterest"`
	TotalExtra    float64 `json:"totalExtra"`
	MonthsSaved   int     `json:"monthsSaved"`
	InterestSaved float64 `json:"interestSaved"`
}

// Validate checks the schedule options on top of the embedded input ranges.
func (in ScheduleInput) Validate() error {
	if err := in.Input.Validate(); err != nil {
		return err
	}
	if err := validation.FirstError(
		validation.NonNegative("extraMonthly", in.ExtraMonthly),
		validation.NonNegative("extraYearly", in.ExtraYearly),
		validation.NonNegative("paymentOverride", in.PaymentOverride),
	); err != nil {
		return err
	}
	for i, prepayment := range in.Prepayments {
		field := fmt.Sprintf("prepayments[%d]", i)
		if err := validation.FirstError(
			validation.IntInRange(field+".month", prepayment.Month, 1, constants.MaxScheduleMonths),
			validation.Positive(field+".amount", prepayment.Amount),
		); err != nil {
			return err
		}
	}
	if in.StartMonth != "" {
		if err := schedule.ValidateMonth(in.StartMonth); err != nil {
			return &validation.FieldError{Field: "startMonth", Reason: err.Error()}
		}
	}
	return nil
}

// ScheduleGenerator produces loan amortization schedules.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// BuildSchedule creates a complete amortization schedule without logging.
func BuildSchedule(in ScheduleInput) (ScheduleResult, error) {
	return NewScheduleGenerator(nil).BuildSchedule(in)
}

// BuildSchedule creates a complete amortization schedule. Extra amounts apply
// against principal after the regular payment and are capped to the remaining
// balance; the final payment is clamped so the balance ends exactly at zero.
func (g *ScheduleGenerator) BuildSchedule(in ScheduleInput) (ScheduleResult, error) {
	if err := in.Validate(); err != nil {
		return ScheduleResult{}, err
	}

	emi, err := monthlyPayment(in.Input)
	if err != nil {
		return ScheduleResult{}, err
	}
	basePayment := emi
	if in.PaymentOverride > 0 {
		basePayment = in.PaymentOverride
	}

	var labels []string
	if in.StartMonth != "" {
		labels, err = schedule.MonthLabels(in.StartMonth, constants.MaxScheduleMonths)
		if err != nil {
			return ScheduleResult{}, err
		}
	}

	prepayments := make(map[int]float64, len(in.Prepayments))
	for _, prepayment := range in.Prepayments {
		prepayments[prepayment.Month] += prepayment.Amount
	}

	result := ScheduleResult{EMI: numeric.Round(emi)}
	balance := in.Principal
	var totalPayment, totalInterest, totalExtra float64

	for period := 1; balance > 0; period++ {
		if period > constants.MaxScheduleMonths {
			return ScheduleResult{}, fmt.Errorf("%w: payment %.2f against %.2f%% over %d periods",
				ErrNeverAmortizes, basePayment, in.AnnualRate, constants.MaxScheduleMonths)
		}

		interest := InterestPortion(balance, in.AnnualRate)
		payment := basePayment
		principal := payment - interest

		// Clamp the final regular payment so principal never overshoots.
		if principal > balance {
			principal = balance
			payment = principal + interest
		}
		remaining := balance - principal

		extra := in.ExtraMonthly
		if period%constants.MonthsPerYear == 0 {
			extra += in.ExtraYearly
		}
		extra += prepayments[period]
		if extra > remaining {
			g.logger.Debug(fmt.Sprintf("period %d: capping extra principal %.2f to remaining balance %.2f",
				period, extra, remaining),
				zap.String("op", "loan.BuildSchedule"),
			)
			extra = remaining
		}

		balance = remaining - extra
		if numeric.Round(balance) == 0 {
			// Snap machine error to an exact payoff.
			balance = 0
		}

		entry := Entry{
			Period:    period,
			Payment:   payment + extra,
			Principal: principal + extra,
			Interest:  interest,
			Extra:     extra,
			Balance:   balance,
		}
		if labels != nil {
			entry.Label = labels[period-1]
		}
		result.Entries = append(result.Entries, entry)

		totalPayment += entry.Payment
		totalInterest += interest
		totalExtra += extra
	}

	result.TotalPayment = numeric.Round(totalPayment)
	result.TotalInterest = numeric.Round(totalInterest)
	result.TotalExtra = numeric.Round(totalExtra)

	baseTotalInterest := emi*float64(in.TermMonths) - in.Principal
	if saved := in.TermMonths - len(result.Entries); saved > 0 {
		result.MonthsSaved = saved
	}
	if saved := numeric.Round(baseTotalInterest - totalInterest); saved > 0 {
		result.InterestSaved = saved
	}

	return result, nil
}
