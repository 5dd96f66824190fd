package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

// CycleExport is the portable form of one pay cycle and its ledger. Amounts are
// decimal strings so nothing is lost in transit.
type CycleExport struct {
	Household string            `yaml:"household"`
	Currency  string            `yaml:"currency"`
	Cycle     CycleInfo         `yaml:"cycle"`
	Totals    map[string]string `yaml:"totals"`
	Seeds     []SeedRow         `yaml:"seeds"`
}

type CycleInfo struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Status         string `yaml:"status"`
	StartDate      string `yaml:"start_date"`
	EndDate        string `yaml:"end_date"`
	IncomeMe       string `yaml:"income_me"`
	IncomePartner  string `yaml:"income_partner"`
	RitualClosedAt int64  `yaml:"ritual_closed_at,omitempty"`
}

type SeedRow struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	PaymentSource string `yaml:"payment_source"`
	Amount        string `yaml:"amount"`
	AmountMe      string `yaml:"amount_me"`
	AmountPartner string `yaml:"amount_partner"`
	SplitRatio    string `yaml:"split_ratio,omitempty"`
	Recurring     bool   `yaml:"recurring"`
	PaidMe        bool   `yaml:"paid_me"`
	PaidPartner   bool   `yaml:"paid_partner"`
	Paid          bool   `yaml:"paid"`
}

// NewCycleExport flattens a cycle, its household settings and its seeds.
func NewCycleExport(household *models.Household, cycle *models.PayCycle, seeds []*models.Seed) *CycleExport {
	e := &CycleExport{
		Household: household.Name,
		Currency:  household.Currency,
		Cycle: CycleInfo{
			ID:             cycle.ID,
			Name:           cycle.Name,
			Status:         string(cycle.Status),
			StartDate:      cycle.StartDate.Format(models.DateFormat),
			EndDate:        cycle.EndDate.Format(models.DateFormat),
			IncomeMe:       cycle.IncomeMe.String(),
			IncomePartner:  cycle.IncomePartner.String(),
			RitualClosedAt: cycle.RitualClosedAt,
		},
		Totals: make(map[string]string, 24),
		Seeds:  make([]SeedRow, 0, len(seeds)),
	}
	for _, b := range models.Buckets() {
		e.Totals[b.Column("alloc")] = cycle.Totals.Alloc.Get(b).String()
		e.Totals[b.Column("rem")] = cycle.Totals.Rem.Get(b).String()
	}
	for _, s := range seeds {
		row := SeedRow{
			Name:          s.Name,
			Type:          string(s.Type),
			PaymentSource: string(s.PaymentSource),
			Amount:        s.Amount.String(),
			AmountMe:      s.AmountMe.String(),
			AmountPartner: s.AmountPartner.String(),
			Recurring:     s.IsRecurring,
			PaidMe:        s.IsPaidMe,
			PaidPartner:   s.IsPaidPartner,
			Paid:          s.IsPaid,
		}
		if s.SplitRatio.Valid {
			row.SplitRatio = s.SplitRatio.Decimal.String()
		}
		e.Seeds = append(e.Seeds, row)
	}
	return e
}

// WriteYAML encodes the export as YAML.
func WriteYAML(w io.Writer, e *CycleExport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

const (
	seedsSheet  = "Seeds"
	totalsSheet = "Totals"
)

var seedHeaders = []string{"Name", "Type", "Paid by", "Amount", "Me", "Partner", "Split ratio", "Recurring", "Paid"}

// WriteXLSX writes the export as a workbook with a Seeds sheet and a Totals sheet.
func WriteXLSX(w io.Writer, e *CycleExport) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), seedsSheet)
	if _, err := f.NewSheet(totalsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	cw := cellWriter{f: f}
	for i, h := range seedHeaders {
		cw.set(seedsSheet, fmt.Sprintf("%c1", 'A'+i), h)
	}
	for idx, s := range e.Seeds {
		row := idx + 2
		cw.set(seedsSheet, fmt.Sprintf("A%d", row), s.Name)
		cw.set(seedsSheet, fmt.Sprintf("B%d", row), s.Type)
		cw.set(seedsSheet, fmt.Sprintf("C%d", row), s.PaymentSource)
		cw.set(seedsSheet, fmt.Sprintf("D%d", row), s.Amount)
		cw.set(seedsSheet, fmt.Sprintf("E%d", row), s.AmountMe)
		cw.set(seedsSheet, fmt.Sprintf("F%d", row), s.AmountPartner)
		cw.set(seedsSheet, fmt.Sprintf("G%d", row), s.SplitRatio)
		cw.set(seedsSheet, fmt.Sprintf("H%d", row), s.Recurring)
		cw.set(seedsSheet, fmt.Sprintf("I%d", row), s.Paid)
	}

	cw.set(totalsSheet, "A1", "Column")
	cw.set(totalsSheet, "B1", "Amount")
	row := 2
	for _, prefix := range []string{"alloc", "rem"} {
		for _, b := range models.Buckets() {
			column := b.Column(prefix)
			cw.set(totalsSheet, fmt.Sprintf("A%d", row), column)
			cw.set(totalsSheet, fmt.Sprintf("B%d", row), e.Totals[column])
			row++
		}
	}
	if cw.err != nil {
		return fmt.Errorf("fill workbook: %w", cw.err)
	}

	f.SetColWidth(seedsSheet, "A", "A", 24)
	f.SetColWidth(seedsSheet, "B", "I", 12)
	f.SetColWidth(totalsSheet, "A", "A", 24)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// cellWriter keeps the first SetCellValue error.
type cellWriter struct {
	f   *excelize.File
	err error
}

func (c *cellWriter) set(sheet, cell string, value any) {
	if c.err != nil {
		return
	}
	c.err = c.f.SetCellValue(sheet, cell, value)
}
