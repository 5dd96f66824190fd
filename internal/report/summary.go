// Package report renders pay cycles for people: a currency-formatted summary for
// the terminal and YAML or spreadsheet exports.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

// FormatMoney renders amount in the given ISO 4217 currency, e.g. "£1,200.50".
// Unknown currencies fall back to the plain amount followed by the code.
func FormatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// Line is one non-empty bucket of a cycle.
type Line struct {
	Type      models.SeedType
	Source    models.PaymentSource
	Allocated decimal.Decimal
	Remaining decimal.Decimal
}

// Summary is a cycle's totals in a household's currency.
type Summary struct {
	Household string
	Currency  string
	Cycle     string
	Status    models.CycleStatus
	StartDate string
	EndDate   string

	Income      decimal.Decimal
	Allocated   decimal.Decimal
	Remaining   decimal.Decimal
	Unallocated decimal.Decimal

	Lines []Line
}

// Summarize collects the cycle's stored totals. Unallocated is income minus
// everything allocated and can be negative when the plan overspends.
func Summarize(cycle *models.PayCycle, household *models.Household) Summary {
	s := Summary{
		Household: household.Name,
		Currency:  household.Currency,
		Cycle:     cycle.Name,
		Status:    cycle.Status,
		StartDate: cycle.StartDate.Format(models.DateFormat),
		EndDate:   cycle.EndDate.Format(models.DateFormat),
		Income:    cycle.IncomeMe.Add(cycle.IncomePartner),
		Allocated: cycle.Totals.Alloc.Sum(),
		Remaining: cycle.Totals.Rem.Sum(),
	}
	s.Unallocated = s.Income.Sub(s.Allocated)

	for _, b := range models.Buckets() {
		alloc, rem := cycle.Totals.Alloc.Get(b), cycle.Totals.Rem.Get(b)
		if alloc.IsZero() && rem.IsZero() {
			continue
		}
		s.Lines = append(s.Lines, Line{Type: b.Type, Source: b.Source, Allocated: alloc, Remaining: rem})
	}
	return s
}

// WriteText prints the summary as an aligned table.
func (s Summary) WriteText(w io.Writer) error {
	m := func(d decimal.Decimal) string { return FormatMoney(d, s.Currency) }

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s (%s)\n", s.Household, s.Cycle, s.Status)
	fmt.Fprintf(tw, "Period\t%s to %s\n", s.StartDate, s.EndDate)
	fmt.Fprintf(tw, "Income\t%s\n", m(s.Income))
	fmt.Fprintf(tw, "Allocated\t%s\n", m(s.Allocated))
	fmt.Fprintf(tw, "Remaining\t%s\n", m(s.Remaining))
	fmt.Fprintf(tw, "Unallocated\t%s\n", m(s.Unallocated))
	if len(s.Lines) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "TYPE\tPAID BY\tALLOCATED\tREMAINING")
		for _, l := range s.Lines {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Type, l.Source, m(l.Allocated), m(l.Remaining))
		}
	}
	return tw.Flush()
}
