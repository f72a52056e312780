// Package output provides utilities for formatting and displaying calculator
// results on the command line. Each result type is rendered through a
// Document: headline fields plus an optional period table.
package output

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/calculators/interest"
	"github.com/iwvelando/finance-calculators/pkg/calculators/investment"
	"github.com/iwvelando/finance-calculators/pkg/calculators/loan"
	"github.com/iwvelando/finance-calculators/pkg/calculators/savings"
	"github.com/iwvelando/finance-calculators/pkg/calculators/tax"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Field is one labeled headline value of a rendered result.
type Field struct {
	Label string
	Value string
}

// Document is the renderable form of one calculator result.
type Document struct {
	Title   string
	Fields  []Field
	Headers []string
	Rows    [][]string
}

// Render writes one calculator result to stdout in the requested format. An
// empty format renders pretty.
func Render(formatName, calculator string, result interface{}) error {
	switch formatName {
	case constants.OutputFormatJSON:
		text, err := JSONString(result)
		if err != nil {
			return err
		}
		fmt.Print(text)
	case constants.OutputFormatCSV:
		doc, err := Build(calculator, result)
		if err != nil {
			return err
		}
		fmt.Print(CsvString(doc))
	case "", constants.OutputFormatPretty:
		doc, err := Build(calculator, result)
		if err != nil {
			return err
		}
		PrettyFormat(doc)
	default:
		return fmt.Errorf("unknown output format %q", formatName)
	}
	return nil
}

// Build converts a calculator result into its renderable document.
func Build(calculator string, result interface{}) (Document, error) {
	p := message.NewPrinter(language.English)
	money := func(v float64) string {
		return p.Sprintf("%.2f", v)
	}
	percent := func(v float64) string {
		return fmt.Sprintf("%.2f%%", v)
	}
	yesNo := func(v bool) string {
		if v {
			return "yes"
		}
		return "no"
	}

	doc := Document{Title: calculator}

	switch r := result.(type) {
	case loan.Result:
		doc.Fields = []Field{
			{"EMI", format.Currency(r.EMI)},
			{"Total payment", format.Currency(r.TotalPayment)},
			{"Total interest", format.Currency(r.TotalInterest)},
		}
	case loan.ScheduleResult:
		doc.Fields = []Field{
			{"EMI", format.Currency(r.EMI)},
			{"Total payment", format.Currency(r.TotalPayment)},
			{"Total interest", format.Currency(r.TotalInterest)},
		}
		if r.TotalExtra > 0 {
			doc.Fields = append(doc.Fields,
				Field{"Total prepaid", format.Currency(r.TotalExtra)},
				Field{"Months saved", strconv.Itoa(r.MonthsSaved)},
				Field{"Interest saved", format.Currency(r.InterestSaved)},
			)
		}
		doc.Headers = []string{"Period", "Month", "Payment", "Principal", "Interest", "Extra", "Balance"}
		for _, entry := range r.Entries {
			doc.Rows = append(doc.Rows, []string{
				strconv.Itoa(entry.Period),
				entry.Label,
				money(entry.Payment),
				money(entry.Principal),
				money(entry.Interest),
				money(entry.Extra),
				money(entry.Balance),
			})
		}
	case loan.TermComparison:
		doc.Fields = []Field{
			{"Recommended term", fmt.Sprintf("%d months", r.RecommendedTerm)},
		}
		doc.Headers = []string{"Term", "EMI", "Total payment", "Total interest", "Affordable"}
		for _, option := range r.Options {
			doc.Rows = append(doc.Rows, []string{
				strconv.Itoa(option.TermMonths),
				money(option.EMI),
				money(option.TotalPayment),
				money(option.TotalInterest),
				yesNo(option.Affordable),
			})
		}
	case interest.SimpleResult:
		doc.Fields = []Field{
			{"Interest", format.Currency(r.Interest)},
			{"Total amount", format.Currency(r.Amount)},
		}
	case interest.CompoundResult:
		doc.Fields = []Field{
			{"Interest", format.Currency(r.Interest)},
			{"Total amount", format.Currency(r.Amount)},
			{"Compounding periods", strconv.Itoa(r.Periods)},
		}
	case savings.Result:
		doc.Fields = savingsFields(r)
	case savings.GoldResult:
		doc.Fields = savingsFields(r.Result)
		if r.Grams > 0 {
			doc.Fields = append(doc.Fields,
				Field{"Holding", fmt.Sprintf("%.3f g", r.Grams)},
				Field{"Final price per gram", format.Currency(r.FinalPricePerGram)},
			)
		}
	case savings.PPFResult:
		doc.Fields = savingsFields(r.Result)
		doc.Headers = []string{"Year", "FY", "Contribution", "Interest", "Balance"}
		for _, entry := range r.Schedule {
			doc.Rows = append(doc.Rows, []string{
				strconv.Itoa(entry.Year),
				entry.Label,
				money(entry.Contribution),
				money(entry.Interest),
				money(entry.Balance),
			})
		}
	case investment.ROIResult:
		doc.Fields = []Field{
			{"Absolute gain", format.Currency(r.AbsoluteGain)},
			{"ROI", percent(r.ROIPercent)},
		}
		if r.CAGRPercent != 0 {
			doc.Fields = append(doc.Fields, Field{"CAGR", percent(r.CAGRPercent)})
		}
	case investment.NPVResult:
		doc.Fields = []Field{
			{"Net present value", format.Currency(r.NetPresentValue)},
			{"Discounted inflows", format.Currency(r.DiscountedFlows)},
		}
	case investment.IRRResult:
		doc.Fields = []Field{
			{"Monthly rate", percent(r.MonthlyRate)},
			{"Annual rate", percent(r.AnnualRate)},
			{"Converged", yesNo(r.Converged)},
		}
	case tax.IncomeResult:
		doc.Fields = []Field{
			{"Taxable income", format.Currency(r.TaxableIncome)},
			{"Tax", format.Currency(r.Tax)},
		}
		if r.Rebate > 0 {
			doc.Fields = append(doc.Fields, Field{"Rebate", format.Currency(r.Rebate)})
		}
		doc.Fields = append(doc.Fields,
			Field{"Cess", format.Currency(r.Cess)},
			Field{"Total tax", format.Currency(r.TotalTax)},
			Field{"Effective rate", percent(r.EffectiveRate)},
		)
		doc.Headers = []string{"From", "Up to", "Rate", "Amount", "Tax"}
		for _, slab := range r.Breakup {
			upTo := "-"
			if slab.UpTo > 0 {
				upTo = money(slab.UpTo)
			}
			doc.Rows = append(doc.Rows, []string{
				money(slab.From),
				upTo,
				percent(slab.RatePercent),
				money(slab.Amount),
				money(slab.Tax),
			})
		}
	case tax.GSTResult:
		doc.Fields = []Field{
			{"Base amount", format.Currency(r.BaseAmount)},
		}
		if r.IGST > 0 {
			doc.Fields = append(doc.Fields, Field{"IGST", format.Currency(r.IGST)})
		} else {
			doc.Fields = append(doc.Fields,
				Field{"CGST", format.Currency(r.CGST)},
				Field{"SGST", format.Currency(r.SGST)},
			)
		}
		doc.Fields = append(doc.Fields,
			Field{"Total tax", format.Currency(r.TotalTax)},
			Field{"Gross amount", format.Currency(r.GrossAmount)},
		)
	case tax.HRAResult:
		doc.Fields = []Field{
			{"Exemption", format.Currency(r.Exemption)},
			{"Taxable HRA", format.Currency(r.TaxableHRA)},
			{"Actual HRA received", format.Currency(r.ActualHRA)},
			{"Rent over 10% of basic", format.Currency(r.RentOverBasic)},
			{"Basic salary portion", format.Currency(r.BasicPortion)},
		}
	default:
		return Document{}, fmt.Errorf("unsupported result type %T", result)
	}

	return doc, nil
}

func savingsFields(r savings.Result) []Field {
	return []Field{
		{"Total invested", format.Currency(r.TotalInvested)},
		{"Total gains", format.Currency(r.TotalGains)},
		{"Maturity amount", format.Currency(r.MaturityAmount)},
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable view.
func PrettyFormat(doc Document) {
	fmt.Printf("--- Results for %s ---\n", doc.Title)

	labelWidth := 0
	for _, field := range doc.Fields {
		if len(field.Label) > labelWidth {
			labelWidth = len(field.Label)
		}
	}
	for _, field := range doc.Fields {
		fmt.Printf("%-*s : %s\n", labelWidth, field.Label, field.Value)
	}

	if len(doc.Headers) == 0 {
		return
	}

	widths := columnWidths(doc)

	fmt.Printf("\n")
	for i, header := range doc.Headers {
		if i > 0 {
			fmt.Printf(" | ")
		}
		fmt.Printf("%-*s", widths[i], header)
	}
	fmt.Printf("\n")
	for i := range doc.Headers {
		if i > 0 {
			fmt.Printf(" | ")
		}
		fmt.Printf("%s", strings.Repeat("_", widths[i]))
	}
	fmt.Printf("\n")
	for _, row := range doc.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Printf(" | ")
			}
			fmt.Printf("%-*s", widths[i], cell)
		}
		fmt.Printf("\n")
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(doc Document) {
	fmt.Print(CsvString(doc))
}

// CsvString returns the document in comma-separated value form. Documents
// with a period table emit the table; headline-only documents emit one header
// row of labels and one row of values.
func CsvString(doc Document) string {
	var b strings.Builder

	if len(doc.Headers) > 0 {
		writeCsvRow(&b, doc.Headers)
		for _, row := range doc.Rows {
			writeCsvRow(&b, row)
		}
		return b.String()
	}

	labels := make([]string, len(doc.Fields))
	values := make([]string, len(doc.Fields))
	for i, field := range doc.Fields {
		labels[i] = field.Label
		values[i] = field.Value
	}
	writeCsvRow(&b, labels)
	writeCsvRow(&b, values)
	return b.String()
}

// JSONString returns the raw result as indented JSON.
func JSONString(result interface{}) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data) + "\n", nil
}

func columnWidths(doc Document) []int {
	widths := make([]int, len(doc.Headers))
	for i, header := range doc.Headers {
		widths[i] = len(header)
	}
	for _, row := range doc.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func writeCsvRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
