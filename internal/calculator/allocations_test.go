package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

func jointSeed(typ models.SeedType, amount, me string) *models.Seed {
	total := dec(amount)
	share := dec(me)
	return &models.Seed{
		Type:          typ,
		PaymentSource: models.SourceJoint,
		Amount:        total,
		AmountMe:      share,
		AmountPartner: total.Sub(share),
	}
}

func soloSeed(typ models.SeedType, source models.PaymentSource, amount string) *models.Seed {
	split := CalculateSeedSplit(dec(amount), source, ratio("0.5"), ratio("0.5"))
	return &models.Seed{
		Type:          typ,
		PaymentSource: source,
		Amount:        dec(amount),
		AmountMe:      split.AmountMe,
		AmountPartner: split.AmountPartner,
	}
}

func TestComputeAllocations_Empty(t *testing.T) {
	totals := ComputeAllocations(nil)

	for _, b := range models.Buckets() {
		assert.True(t, totals.Alloc.Get(b).IsZero(), "alloc %v", b)
		assert.True(t, totals.Rem.Get(b).IsZero(), "rem %v", b)
	}
}

func TestComputeAllocations_AllocatedTotals(t *testing.T) {
	seeds := []*models.Seed{
		soloSeed(models.SeedNeed, models.SourceMe, "500"),
		soloSeed(models.SeedNeed, models.SourceMe, "25.50"),
		soloSeed(models.SeedWant, models.SourcePartner, "40"),
		jointSeed(models.SeedNeed, "1200", "720"),
		jointSeed(models.SeedSavings, "100", "60"),
		soloSeed(models.SeedRepay, models.SourcePartner, "75"),
	}

	totals := ComputeAllocations(seeds)

	want := map[models.Bucket]string{
		{Type: models.SeedNeed, Source: models.SourceMe}:       "525.50",
		{Type: models.SeedNeed, Source: models.SourceJoint}:    "1200",
		{Type: models.SeedWant, Source: models.SourcePartner}:  "40",
		{Type: models.SeedSavings, Source: models.SourceJoint}: "100",
		{Type: models.SeedRepay, Source: models.SourcePartner}: "75",
	}
	for _, b := range models.Buckets() {
		expected := dec("0")
		if v, ok := want[b]; ok {
			expected = dec(v)
		}
		assert.True(t, totals.Alloc.Get(b).Equal(expected), "alloc %s = %s, want %s", b.Column("alloc"), totals.Alloc.Get(b), expected)
		// nothing is paid yet
		assert.True(t, totals.Rem.Get(b).Equal(expected), "rem %s = %s, want %s", b.Column("rem"), totals.Rem.Get(b), expected)
	}
}

func TestComputeAllocations_RemainingTracksPaidFlags(t *testing.T) {
	paidSolo := soloSeed(models.SeedWant, models.SourceMe, "30")
	paidSolo.IsPaid = true
	paidSolo.IsPaidMe = true

	unpaidSolo := soloSeed(models.SeedWant, models.SourceMe, "12")

	halfPaid := jointSeed(models.SeedSavings, "100", "60")
	halfPaid.IsPaidMe = true

	partnerPaid := jointSeed(models.SeedSavings, "50", "25")
	partnerPaid.IsPaidPartner = true

	fullyPaid := jointSeed(models.SeedSavings, "10", "5")
	fullyPaid.IsPaid, fullyPaid.IsPaidMe, fullyPaid.IsPaidPartner = true, true, true

	totals := ComputeAllocations([]*models.Seed{paidSolo, unpaidSolo, halfPaid, partnerPaid, fullyPaid})

	wantMe := models.Bucket{Type: models.SeedWant, Source: models.SourceMe}
	assert.True(t, totals.Alloc.Get(wantMe).Equal(dec("42")))
	assert.True(t, totals.Rem.Get(wantMe).Equal(dec("12")))

	savingsJoint := models.Bucket{Type: models.SeedSavings, Source: models.SourceJoint}
	assert.True(t, totals.Alloc.Get(savingsJoint).Equal(dec("160")))
	// 40 (partner share of halfPaid) + 25 (me share of partnerPaid)
	assert.True(t, totals.Rem.Get(savingsJoint).Equal(dec("65")), "rem = %s", totals.Rem.Get(savingsJoint))
}

func TestBucketColumn(t *testing.T) {
	assert.Equal(t, "alloc_needs_me", models.Bucket{Type: models.SeedNeed, Source: models.SourceMe}.Column("alloc"))
	assert.Equal(t, "rem_wants_partner", models.Bucket{Type: models.SeedWant, Source: models.SourcePartner}.Column("rem"))
	assert.Equal(t, "rem_savings_joint", models.Bucket{Type: models.SeedSavings, Source: models.SourceJoint}.Column("rem"))
	assert.Equal(t, "alloc_repay_joint", models.Bucket{Type: models.SeedRepay, Source: models.SourceJoint}.Column("alloc"))
	assert.Len(t, models.Buckets(), 12)
}
