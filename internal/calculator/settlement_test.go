package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

// applySettlement writes the settlement flags back onto the seed.
func applySettlement(seed *models.Seed, s Settlement) {
	seed.IsPaid = s.IsPaid
	seed.IsPaidMe = s.IsPaidMe
	seed.IsPaidPartner = s.IsPaidPartner
}

func TestPaidAmount(t *testing.T) {
	joint := jointSeed(models.SeedSavings, "100", "60")
	solo := soloSeed(models.SeedNeed, models.SourcePartner, "45")

	assert.True(t, PaidAmount(joint, models.PayerMe).Equal(dec("60")))
	assert.True(t, PaidAmount(joint, models.PayerPartner).Equal(dec("40")))
	assert.True(t, PaidAmount(joint, models.PayerBoth).Equal(dec("100")))
	assert.True(t, PaidAmount(solo, models.PayerMe).Equal(dec("45")))
	assert.True(t, PaidAmount(solo, models.PayerPartner).Equal(dec("45")))
}

func TestMarkPaid_JointShareWaitsForOtherShare(t *testing.T) {
	seed := jointSeed(models.SeedSavings, "100", "60")

	s := MarkPaid(seed, models.PayerMe)
	assert.True(t, s.IsPaidMe)
	assert.False(t, s.IsPaidPartner)
	assert.False(t, s.IsPaid, "is_paid must wait for partner's share")
	assert.True(t, s.Amount.Equal(dec("60")))
	applySettlement(seed, s)

	s = MarkPaid(seed, models.PayerPartner)
	assert.True(t, s.IsPaidMe)
	assert.True(t, s.IsPaidPartner)
	assert.True(t, s.IsPaid)
	assert.True(t, s.Amount.Equal(dec("40")))
}

func TestMarkPaid_NonJointNeverSetsPartnerFlag(t *testing.T) {
	seed := soloSeed(models.SeedNeed, models.SourceMe, "20")

	s := MarkPaid(seed, models.PayerBoth)

	assert.True(t, s.IsPaid)
	assert.True(t, s.IsPaidMe)
	assert.False(t, s.IsPaidPartner)
	assert.True(t, s.Amount.Equal(dec("20")))
	assert.Equal(t, models.Bucket{Type: models.SeedNeed, Source: models.SourceMe}, s.Bucket)
}

func TestMarkPaid_BothOnHalfPaidJointOnlyCountsOutstandingShare(t *testing.T) {
	seed := jointSeed(models.SeedNeed, "100", "60")
	seed.IsPaidMe = true

	s := MarkPaid(seed, models.PayerBoth)

	assert.True(t, s.IsPaid)
	assert.True(t, s.Amount.Equal(dec("40")), "amount = %s", s.Amount)
}

func TestMarkPaid_Idempotent(t *testing.T) {
	seed := jointSeed(models.SeedSavings, "100", "60")
	rem := models.BucketTotals{}
	rem.Add(seed.Bucket(), dec("100"))

	first := MarkPaid(seed, models.PayerMe)
	first.ApplyRemaining(rem)
	applySettlement(seed, first)
	require.True(t, rem.Get(seed.Bucket()).Equal(dec("40")))

	second := MarkPaid(seed, models.PayerMe)
	second.ApplyRemaining(rem)
	applySettlement(seed, second)

	assert.True(t, rem.Get(seed.Bucket()).Equal(dec("40")), "rem = %s", rem.Get(seed.Bucket()))
	assert.True(t, seed.IsPaidMe)
}

func TestUnmarkPaid_ClearsIsPaidEagerly(t *testing.T) {
	seed := jointSeed(models.SeedWant, "80", "40")
	seed.IsPaid, seed.IsPaidMe, seed.IsPaidPartner = true, true, true

	s := UnmarkPaid(seed, models.PayerPartner)

	// Documented asymmetry: a single-share unmark drops is_paid at once,
	// whereas marking needs both shares before promoting it.
	assert.False(t, s.IsPaid)
	assert.True(t, s.IsPaidMe)
	assert.False(t, s.IsPaidPartner)
	assert.True(t, s.Amount.Equal(dec("40")))
}

func TestUnmarkPaid_UnpaidShareIsNoop(t *testing.T) {
	seed := jointSeed(models.SeedWant, "80", "40")

	s := UnmarkPaid(seed, models.PayerMe)

	assert.True(t, s.Amount.IsZero())
}

func TestSettlement_RoundTrip(t *testing.T) {
	payers := []models.Payer{models.PayerMe, models.PayerPartner, models.PayerBoth}

	for _, payer := range payers {
		t.Run(string(payer), func(t *testing.T) {
			seed := jointSeed(models.SeedRepay, "250", "100")
			rem := models.BucketTotals{}
			rem.Add(seed.Bucket(), dec("400"))
			balance := dec("1000")

			mark := MarkPaid(seed, payer)
			mark.ApplyRemaining(rem)
			balance = mark.RepaymentBalance(balance)
			applySettlement(seed, mark)

			unmark := UnmarkPaid(seed, payer)
			unmark.ApplyRemaining(rem)
			balance = unmark.RepaymentBalance(balance)
			applySettlement(seed, unmark)

			assert.True(t, rem.Get(seed.Bucket()).Equal(dec("400")), "rem = %s", rem.Get(seed.Bucket()))
			assert.True(t, balance.Equal(dec("1000")), "balance = %s", balance)
			assert.False(t, seed.IsPaid)
		})
	}
}

func TestSettlement_FloorsAtZero(t *testing.T) {
	seed := soloSeed(models.SeedRepay, models.SourceMe, "300")
	rem := models.BucketTotals{}
	rem.Add(seed.Bucket(), dec("100"))

	s := MarkPaid(seed, models.PayerMe)
	s.ApplyRemaining(rem)

	assert.True(t, rem.Get(seed.Bucket()).IsZero())
	assert.True(t, s.RepaymentBalance(dec("50")).IsZero())
	assert.True(t, s.PotAmount(dec("5")).Equal(dec("305")))
}
