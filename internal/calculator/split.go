package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

// splitPlaces is the precision of the persisted "me" share.
const splitPlaces = 2

// SeedSplit is the persisted split of one seed's amount.
type SeedSplit struct {
	AmountMe      decimal.Decimal
	AmountPartner decimal.Decimal
}

// CalculateSeedSplit computes how a seed's total is attributed between me and partner.
//
// Algorithm:
//   - me: the whole amount goes to me
//   - partner: the whole amount goes to partner
//   - joint: me = round(total × ratio, 2), partner = total − me
//
// ratio is the seed's own split ratio, falling back to the household ratio and then 0.5.
// Partner's share is derived by subtraction so the two parts always sum to the total.
func CalculateSeedSplit(total decimal.Decimal, source models.PaymentSource, seedRatio, householdRatio decimal.NullDecimal) SeedSplit {
	switch source {
	case models.SourceMe:
		return SeedSplit{AmountMe: total, AmountPartner: decimal.Zero}
	case models.SourcePartner:
		return SeedSplit{AmountMe: decimal.Zero, AmountPartner: total}
	}

	ratio := EffectiveRatio(seedRatio, householdRatio)
	me := total.Mul(ratio).Round(splitPlaces)
	return SeedSplit{AmountMe: me, AmountPartner: total.Sub(me)}
}

// EffectiveRatio resolves the joint split ratio for a seed.
func EffectiveRatio(seedRatio, householdRatio decimal.NullDecimal) decimal.Decimal {
	if seedRatio.Valid {
		return seedRatio.Decimal
	}
	if householdRatio.Valid {
		return householdRatio.Decimal
	}
	return models.DefaultJointRatio
}

// ValidateRatio checks that a split ratio lies in [0, 1].
func ValidateRatio(ratio decimal.Decimal) error {
	if ratio.IsNegative() || ratio.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("split ratio must be between 0 and 1, got %s", ratio)
	}
	return nil
}

// ValidateAmount checks that a seed amount is not negative.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative, got %s", amount)
	}
	return nil
}
