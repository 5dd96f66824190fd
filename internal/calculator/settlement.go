package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

// Settlement is the outcome of marking or unmarking a seed as paid.
type Settlement struct {
	// Marked is true for mark-paid, false for unmark.
	Marked bool

	// New flag values for the seed.
	IsPaid        bool
	IsPaidMe      bool
	IsPaidPartner bool

	// Bucket is the remaining-total bucket affected.
	Bucket models.Bucket

	// Amount is how much changed paid state. Shares that were already in the
	// target state contribute nothing, which makes repeated calls no-ops.
	Amount decimal.Decimal
}

// PaidAmount returns the part of a seed attributed to payer: the whole amount for
// me/partner seeds or when both shares are settled, otherwise that payer's share.
func PaidAmount(seed *models.Seed, payer models.Payer) decimal.Decimal {
	if !seed.IsJoint() {
		return seed.Amount
	}
	switch payer {
	case models.PayerMe:
		return seed.AmountMe
	case models.PayerPartner:
		return seed.AmountPartner
	}
	return seed.Amount
}

// MarkPaid computes the flag updates for marking payer's share of seed as paid.
//
// Marking "both", or any payer on a non-joint seed, settles the whole seed; the
// partner flag is only set when the seed actually has a partner share. Marking a
// single share of a joint seed promotes IsPaid only once the other share is paid.
func MarkPaid(seed *models.Seed, payer models.Payer) Settlement {
	s := Settlement{
		Marked:        true,
		IsPaid:        seed.IsPaid,
		IsPaidMe:      seed.IsPaidMe,
		IsPaidPartner: seed.IsPaidPartner,
		Bucket:        seed.Bucket(),
		Amount:        decimal.Zero,
	}

	switch {
	case !seed.IsJoint():
		if !seed.IsPaid {
			s.Amount = PaidAmount(seed, payer)
		}
		s.IsPaidMe = true
		s.IsPaid = true
	case payer == models.PayerBoth:
		s.Amount = unsettled(seed, true)
		s.IsPaidMe = true
		s.IsPaidPartner = true
		s.IsPaid = true
	case payer == models.PayerMe:
		if !seed.IsPaidMe {
			s.Amount = PaidAmount(seed, models.PayerMe)
		}
		s.IsPaidMe = true
		s.IsPaid = seed.IsPaidPartner
	case payer == models.PayerPartner:
		if !seed.IsPaidPartner {
			s.Amount = PaidAmount(seed, models.PayerPartner)
		}
		s.IsPaidPartner = true
		s.IsPaid = seed.IsPaidMe
	}

	return s
}

// UnmarkPaid computes the flag updates for reverting payer's share of seed.
//
// Unlike MarkPaid, unmarking a single share of a joint seed clears IsPaid
// immediately rather than waiting on the other share.
func UnmarkPaid(seed *models.Seed, payer models.Payer) Settlement {
	s := Settlement{
		Marked:        false,
		IsPaid:        false,
		IsPaidMe:      seed.IsPaidMe,
		IsPaidPartner: seed.IsPaidPartner,
		Bucket:        seed.Bucket(),
		Amount:        decimal.Zero,
	}

	switch {
	case !seed.IsJoint():
		if seed.IsPaid {
			s.Amount = PaidAmount(seed, payer)
		}
		s.IsPaidMe = false
	case payer == models.PayerBoth:
		s.Amount = unsettled(seed, false)
		s.IsPaidMe = false
		s.IsPaidPartner = false
	case payer == models.PayerMe:
		if seed.IsPaidMe {
			s.Amount = PaidAmount(seed, models.PayerMe)
		}
		s.IsPaidMe = false
	case payer == models.PayerPartner:
		if seed.IsPaidPartner {
			s.Amount = PaidAmount(seed, models.PayerPartner)
		}
		s.IsPaidPartner = false
	}

	return s
}

// unsettled sums the joint shares whose paid flag differs from target.
func unsettled(seed *models.Seed, target bool) decimal.Decimal {
	amount := decimal.Zero
	if seed.IsPaidMe != target {
		amount = amount.Add(seed.AmountMe)
	}
	if seed.IsPaidPartner != target {
		amount = amount.Add(seed.AmountPartner)
	}
	return amount
}

// ApplyRemaining adjusts the affected remaining total: down when marking, up when
// unmarking. The result is floored at zero.
func (s Settlement) ApplyRemaining(rem models.BucketTotals) {
	if s.Marked {
		rem[s.Bucket] = floorZero(rem.Get(s.Bucket).Sub(s.Amount))
		return
	}
	rem[s.Bucket] = rem.Get(s.Bucket).Add(s.Amount)
}

// PotAmount returns a linked pot's balance after the settlement.
func (s Settlement) PotAmount(current decimal.Decimal) decimal.Decimal {
	if s.Marked {
		return current.Add(s.Amount)
	}
	return floorZero(current.Sub(s.Amount))
}

// RepaymentBalance returns a linked repayment's balance after the settlement.
func (s Settlement) RepaymentBalance(current decimal.Decimal) decimal.Decimal {
	if s.Marked {
		return floorZero(current.Sub(s.Amount))
	}
	return current.Add(s.Amount)
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
