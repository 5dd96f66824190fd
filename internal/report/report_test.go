package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

func fixture() (*models.Household, *models.PayCycle, []*models.Seed) {
	h := &models.Household{
		ID:           "h1",
		Name:         "The Smiths",
		JointRatio:   decimal.RequireFromString("0.5"),
		Currency:     "GBP",
		PayCycleType: models.PayCycleSpecificDate,
		PayDay:       25,
	}

	totals := models.NewAllocationTotals()
	rent := models.Bucket{Type: models.SeedNeed, Source: models.SourceJoint}
	fund := models.Bucket{Type: models.SeedSavings, Source: models.SourceMe}
	totals.Alloc.Add(rent, decimal.RequireFromString("1200.50"))
	totals.Rem.Add(rent, decimal.RequireFromString("600.25"))
	totals.Alloc.Add(fund, decimal.NewFromInt(100))

	c := &models.PayCycle{
		ID:            "c1",
		HouseholdID:   "h1",
		Name:          "Mar 2026",
		Status:        models.CycleActive,
		StartDate:     time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 4, 24, 0, 0, 0, 0, time.UTC),
		IncomeMe:      decimal.NewFromInt(2500),
		IncomePartner: decimal.NewFromInt(2100),
		Totals:        totals,
	}

	seeds := []*models.Seed{
		{
			ID:            "s1",
			Name:          "Rent",
			Amount:        decimal.RequireFromString("1200.50"),
			Type:          models.SeedNeed,
			PaymentSource: models.SourceJoint,
			SplitRatio:    decimal.NewNullDecimal(decimal.RequireFromString("0.5")),
			AmountMe:      decimal.RequireFromString("600.25"),
			AmountPartner: decimal.RequireFromString("600.25"),
			IsRecurring:   true,
			IsPaidMe:      true,
		},
		{
			ID:            "s2",
			Name:          "Holiday fund",
			Amount:        decimal.NewFromInt(100),
			Type:          models.SeedSavings,
			PaymentSource: models.SourceMe,
			AmountMe:      decimal.NewFromInt(100),
			AmountPartner: decimal.Zero,
			IsPaid:        true,
			IsPaidMe:      true,
		},
	}
	return h, c, seeds
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{"pounds with thousands", "1200.50", "GBP", "£1,200.50"},
		{"rounds to minor units", "10.005", "GBP", "£10.01"},
		{"zero", "0", "GBP", "£0.00"},
		{"unknown currency", "12.5", "XQQ", "12.50 XQQ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}

func TestSummarize(t *testing.T) {
	h, c, _ := fixture()

	s := Summarize(c, h)

	assert.Equal(t, "2026-03-25", s.StartDate)
	assert.Equal(t, "2026-04-24", s.EndDate)
	assert.True(t, s.Income.Equal(decimal.NewFromInt(4600)), "income = %s", s.Income)
	assert.True(t, s.Allocated.Equal(decimal.RequireFromString("1300.50")), "allocated = %s", s.Allocated)
	assert.True(t, s.Remaining.Equal(decimal.RequireFromString("600.25")), "remaining = %s", s.Remaining)
	assert.True(t, s.Unallocated.Equal(decimal.RequireFromString("3299.50")), "unallocated = %s", s.Unallocated)

	// Only non-empty buckets are listed, in bucket order.
	require.Len(t, s.Lines, 2)
	assert.Equal(t, models.SeedNeed, s.Lines[0].Type)
	assert.Equal(t, models.SourceJoint, s.Lines[0].Source)
	assert.Equal(t, models.SeedSavings, s.Lines[1].Type)
	assert.True(t, s.Lines[1].Remaining.IsZero())
}

func TestSummaryWriteText(t *testing.T) {
	h, c, _ := fixture()

	var buf bytes.Buffer
	require.NoError(t, Summarize(c, h).WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "The Smiths")
	assert.Contains(t, out, "Mar 2026 (active)")
	assert.Contains(t, out, "£4,600.00")
	assert.Contains(t, out, "£1,300.50")
	assert.Contains(t, out, "PAID BY")
}

func TestWriteYAML(t *testing.T) {
	h, c, seeds := fixture()

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, NewCycleExport(h, c, seeds)))

	var got CycleExport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "The Smiths", got.Household)
	assert.Equal(t, "active", got.Cycle.Status)
	assert.Equal(t, "2026-03-25", got.Cycle.StartDate)
	assert.Equal(t, "1200.5", got.Totals["alloc_needs_joint"])
	assert.Equal(t, "0", got.Totals["rem_wants_me"])
	assert.Len(t, got.Totals, 24)

	require.Len(t, got.Seeds, 2)
	assert.Equal(t, "Rent", got.Seeds[0].Name)
	assert.Equal(t, "0.5", got.Seeds[0].SplitRatio)
	assert.True(t, got.Seeds[0].PaidMe)
	assert.False(t, got.Seeds[0].Paid)
	assert.Empty(t, got.Seeds[1].SplitRatio)
}

func TestWriteXLSX(t *testing.T) {
	h, c, seeds := fixture()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, NewCycleExport(h, c, seeds)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	cell := func(sheet, axis string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, axis)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Name", cell("Seeds", "A1"))
	assert.Equal(t, "Rent", cell("Seeds", "A2"))
	assert.Equal(t, "1200.5", cell("Seeds", "D2"))
	assert.Equal(t, "Holiday fund", cell("Seeds", "A3"))

	assert.Equal(t, "alloc_needs_me", cell("Totals", "A2"))
	assert.Equal(t, "alloc_needs_joint", cell("Totals", "A4"))
	assert.Equal(t, "1200.5", cell("Totals", "B4"))
	assert.Equal(t, "rem_needs_me", cell("Totals", "A14"))
}

func TestWriteXLSX_Sheets(t *testing.T) {
	h, c, seeds := fixture()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, NewCycleExport(h, c, seeds)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Seeds", "Totals"}, f.GetSheetList())
}
