package service

import (
	"github.com/shopspring/decimal"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
	plotv1 "github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1"
)

func toUser(u *models.User) *plotv1.User {
	return &plotv1.User{
		ID:                u.ID,
		Email:             u.Email,
		DisplayName:       u.DisplayName,
		HouseholdID:       u.HouseholdID,
		CurrentPaycycleID: u.CurrentPaycycleID,
		CreatedAt:         u.CreatedAt,
	}
}

func toHousehold(h *models.Household) *plotv1.Household {
	return &plotv1.Household{
		ID:            h.ID,
		Name:          h.Name,
		JointRatio:    h.JointRatio,
		Currency:      h.Currency,
		PayCycleType:  string(h.PayCycleType),
		PayDay:        h.PayDay,
		PartnerUserID: h.PartnerUserID,
		CreatedAt:     h.CreatedAt,
	}
}

func toPayCycle(c *models.PayCycle) *plotv1.PayCycle {
	totals := make(map[string]decimal.Decimal, 24)
	for _, b := range models.Buckets() {
		totals[b.Column("alloc")] = c.Totals.Alloc.Get(b)
		totals[b.Column("rem")] = c.Totals.Rem.Get(b)
	}
	return &plotv1.PayCycle{
		ID:             c.ID,
		HouseholdID:    c.HouseholdID,
		Name:           c.Name,
		Status:         string(c.Status),
		StartDate:      c.StartDate.Format(models.DateFormat),
		EndDate:        c.EndDate.Format(models.DateFormat),
		IncomeMe:       c.IncomeMe,
		IncomePartner:  c.IncomePartner,
		Totals:         totals,
		RitualClosedAt: c.RitualClosedAt,
		CreatedAt:      c.CreatedAt,
	}
}

func toSeed(s *models.Seed) *plotv1.Seed {
	msg := &plotv1.Seed{
		ID:                s.ID,
		HouseholdID:       s.HouseholdID,
		PaycycleID:        s.PaycycleID,
		Name:              s.Name,
		Amount:            s.Amount,
		Type:              string(s.Type),
		PaymentSource:     string(s.PaymentSource),
		AmountMe:          s.AmountMe,
		AmountPartner:     s.AmountPartner,
		IsRecurring:       s.IsRecurring,
		IsPaid:            s.IsPaid,
		IsPaidMe:          s.IsPaidMe,
		IsPaidPartner:     s.IsPaidPartner,
		LinkedPotID:       s.LinkedPotID,
		LinkedRepaymentID: s.LinkedRepaymentID,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.SplitRatio.Valid {
		ratio := s.SplitRatio.Decimal
		msg.SplitRatio = &ratio
	}
	return msg
}

func toPot(p *models.Pot) *plotv1.Pot {
	return &plotv1.Pot{
		ID:            p.ID,
		HouseholdID:   p.HouseholdID,
		Name:          p.Name,
		CurrentAmount: p.CurrentAmount,
		TargetAmount:  p.TargetAmount,
		CreatedAt:     p.CreatedAt,
	}
}

func toRepayment(r *models.Repayment) *plotv1.Repayment {
	return &plotv1.Repayment{
		ID:              r.ID,
		HouseholdID:     r.HouseholdID,
		Name:            r.Name,
		CurrentBalance:  r.CurrentBalance,
		StartingBalance: r.StartingBalance,
		CreatedAt:       r.CreatedAt,
	}
}

// nullRatio converts an optional wire ratio to the model's nullable form.
func nullRatio(ratio *decimal.Decimal) decimal.NullDecimal {
	if ratio == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*ratio)
}
