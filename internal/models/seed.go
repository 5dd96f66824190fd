package models

import "github.com/shopspring/decimal"

// SeedType classifies a seed into one of the four budget categories.
type SeedType string

const (
	SeedNeed    SeedType = "need"
	SeedWant    SeedType = "want"
	SeedSavings SeedType = "savings"
	SeedRepay   SeedType = "repay"
)

// SeedTypes lists every seed type in column order.
var SeedTypes = []SeedType{SeedNeed, SeedWant, SeedSavings, SeedRepay}

// Valid reports whether t is a known seed type.
func (t SeedType) Valid() bool {
	switch t {
	case SeedNeed, SeedWant, SeedSavings, SeedRepay:
		return true
	}
	return false
}

// columnName is the pluralized form used in pay cycle total columns (alloc_needs_me, ...).
func (t SeedType) columnName() string {
	switch t {
	case SeedNeed:
		return "needs"
	case SeedWant:
		return "wants"
	}
	return string(t)
}

// PaymentSource identifies who pays a seed.
type PaymentSource string

const (
	SourceMe      PaymentSource = "me"
	SourcePartner PaymentSource = "partner"
	SourceJoint   PaymentSource = "joint"
)

// PaymentSources lists every payment source in column order.
var PaymentSources = []PaymentSource{SourceMe, SourcePartner, SourceJoint}

// Valid reports whether s is a known payment source.
func (s PaymentSource) Valid() bool {
	switch s {
	case SourceMe, SourcePartner, SourceJoint:
		return true
	}
	return false
}

// Payer selects whose share of a seed is being settled.
type Payer string

const (
	PayerMe      Payer = "me"
	PayerPartner Payer = "partner"
	PayerBoth    Payer = "both"
)

// Valid reports whether p is a known payer.
func (p Payer) Valid() bool {
	switch p {
	case PayerMe, PayerPartner, PayerBoth:
		return true
	}
	return false
}

// Seed is a single planned line item within a pay cycle.
type Seed struct {
	// ID is the unique identifier for the seed (UUID format).
	ID string

	// HouseholdID and PaycycleID locate the seed.
	HouseholdID string
	PaycycleID  string

	// Name is the user-facing label (e.g., "Rent", "Holiday fund").
	// Together with Type it is the key used when resyncing a draft cycle.
	Name string

	// Amount is the total planned amount.
	Amount decimal.Decimal

	Type          SeedType
	PaymentSource PaymentSource

	// SplitRatio overrides the household joint ratio for joint seeds.
	SplitRatio decimal.NullDecimal

	// AmountMe and AmountPartner are the persisted split of Amount.
	// For joint seeds they always sum exactly to Amount; otherwise the
	// non-paying side is zero.
	AmountMe      decimal.Decimal
	AmountPartner decimal.Decimal

	// IsRecurring seeds are cloned into the next pay cycle on rollover.
	IsRecurring bool

	// Settlement flags. IsPaid is derived: for joint seeds it is true once both
	// shares are paid, otherwise it follows the single payer.
	IsPaid        bool
	IsPaidMe      bool
	IsPaidPartner bool

	// LinkedPotID / LinkedRepaymentID are empty when the seed is unlinked.
	LinkedPotID       string
	LinkedRepaymentID string

	CreatedAt int64
	UpdatedAt int64
}

// IsJoint reports whether the seed is paid from the shared account.
func (s *Seed) IsJoint() bool {
	return s.PaymentSource == SourceJoint
}

// Bucket returns the totals bucket the seed contributes to.
func (s *Seed) Bucket() Bucket {
	return Bucket{Type: s.Type, Source: s.PaymentSource}
}

// ResyncKey is the name+type composite used to match draft seeds against active ones.
func (s *Seed) ResyncKey() string {
	return string(s.Type) + "\x00" + s.Name
}
