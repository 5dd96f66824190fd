package models

import "github.com/shopspring/decimal"

// PayCycleType selects how the next pay cycle's date range is derived.
type PayCycleType string

const (
	// PayCycleSpecificDate: paid on the same day of every month (PayDay).
	PayCycleSpecificDate PayCycleType = "specific_date"
	// PayCycleLastWorkingDay: paid on the last weekday of every month.
	PayCycleLastWorkingDay PayCycleType = "last_working_day"
	// PayCycleEvery4Weeks: paid every 28 days.
	PayCycleEvery4Weeks PayCycleType = "every_4_weeks"
	// PayCycleFortnightly: paid every 14 days.
	PayCycleFortnightly PayCycleType = "fortnightly"
	// PayCycleWeekly: paid every 7 days.
	PayCycleWeekly PayCycleType = "weekly"
)

// Valid reports whether t is a known pay-cycle rule.
func (t PayCycleType) Valid() bool {
	switch t {
	case PayCycleSpecificDate, PayCycleLastWorkingDay, PayCycleEvery4Weeks, PayCycleFortnightly, PayCycleWeekly:
		return true
	}
	return false
}

// DefaultJointRatio is used when neither the seed nor the household sets a split ratio.
var DefaultJointRatio = decimal.New(5, -1)

// DefaultCurrency is the ISO 4217 code assigned to new households.
const DefaultCurrency = "GBP"

// Household is the budgeting unit shared by a user and an optional partner.
type Household struct {
	// ID is the unique identifier for the household (UUID format).
	ID string

	// Name is the display name (e.g., "The Smiths").
	Name string

	// JointRatio is the share of a joint seed attributed to "me" (0..1).
	// A seed's own SplitRatio takes precedence when set.
	JointRatio decimal.Decimal

	// Currency is the ISO 4217 code used when formatting amounts.
	Currency string

	// PayCycleType and PayDay describe when the household gets paid.
	// PayDay is only meaningful for PayCycleSpecificDate.
	PayCycleType PayCycleType
	PayDay       int

	// PartnerUserID is the linked partner's user ID, empty when solo.
	PartnerUserID string

	// CreatedAt is the Unix timestamp when the household was created.
	CreatedAt int64
}

// PayRule returns the household's pay-cycle rule.
func (h *Household) PayRule() PayRule {
	return PayRule{Type: h.PayCycleType, PayDay: h.PayDay}
}

// PayRule is the subset of a household needed to compute pay-cycle dates.
type PayRule struct {
	Type   PayCycleType
	PayDay int
}
