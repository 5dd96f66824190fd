package plotv1

import "github.com/shopspring/decimal"

type Seed struct {
	ID                string           `json:"id"`
	HouseholdID       string           `json:"household_id"`
	PaycycleID        string           `json:"paycycle_id"`
	Name              string           `json:"name"`
	Amount            decimal.Decimal  `json:"amount"`
	Type              string           `json:"type"`
	PaymentSource     string           `json:"payment_source"`
	SplitRatio        *decimal.Decimal `json:"split_ratio,omitempty"`
	AmountMe          decimal.Decimal  `json:"amount_me"`
	AmountPartner     decimal.Decimal  `json:"amount_partner"`
	IsRecurring       bool             `json:"is_recurring"`
	IsPaid            bool             `json:"is_paid"`
	IsPaidMe          bool             `json:"is_paid_me"`
	IsPaidPartner     bool             `json:"is_paid_partner"`
	LinkedPotID       string           `json:"linked_pot_id,omitempty"`
	LinkedRepaymentID string           `json:"linked_repayment_id,omitempty"`
	CreatedAt         int64            `json:"created_at"`
	UpdatedAt         int64            `json:"updated_at"`
}

// PotInput creates a pot inline with a savings seed.
type PotInput struct {
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
}

// RepaymentInput creates a repayment inline with a repay seed.
type RepaymentInput struct {
	Name            string          `json:"name"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
}

type CreateSeedRequest struct {
	PaycycleID        string           `json:"paycycle_id"`
	Name              string           `json:"name"`
	Amount            decimal.Decimal  `json:"amount"`
	Type              string           `json:"type"`
	PaymentSource     string           `json:"payment_source"`
	SplitRatio        *decimal.Decimal `json:"split_ratio,omitempty"`
	IsRecurring       bool             `json:"is_recurring"`
	LinkedPotID       string           `json:"linked_pot_id,omitempty"`
	LinkedRepaymentID string           `json:"linked_repayment_id,omitempty"`
	Pot               *PotInput        `json:"pot,omitempty"`
	Repayment         *RepaymentInput  `json:"repayment,omitempty"`
}

type CreateSeedResponse struct {
	Seed *Seed `json:"seed"`
}

// PotUpdate applies the non-nil fields to the seed's linked pot.
type PotUpdate struct {
	Name          *string          `json:"name,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
}

// RepaymentUpdate applies the non-nil fields to the seed's linked repayment.
type RepaymentUpdate struct {
	Name            *string          `json:"name,omitempty"`
	CurrentBalance  *decimal.Decimal `json:"current_balance,omitempty"`
	StartingBalance *decimal.Decimal `json:"starting_balance,omitempty"`
}

// UpdateSeedRequest applies the non-nil fields. ClearSplitRatio reverts the seed
// to the household ratio.
type UpdateSeedRequest struct {
	ID                string           `json:"id"`
	Name              *string          `json:"name,omitempty"`
	Amount            *decimal.Decimal `json:"amount,omitempty"`
	Type              *string          `json:"type,omitempty"`
	PaymentSource     *string          `json:"payment_source,omitempty"`
	SplitRatio        *decimal.Decimal `json:"split_ratio,omitempty"`
	ClearSplitRatio   bool             `json:"clear_split_ratio,omitempty"`
	IsRecurring       *bool            `json:"is_recurring,omitempty"`
	LinkedPotID       *string          `json:"linked_pot_id,omitempty"`
	LinkedRepaymentID *string          `json:"linked_repayment_id,omitempty"`
	Pot               *PotUpdate       `json:"pot,omitempty"`
	Repayment         *RepaymentUpdate `json:"repayment,omitempty"`
}

type UpdateSeedResponse struct {
	Seed *Seed `json:"seed"`
}

type DeleteSeedRequest struct {
	ID string `json:"id"`
}

type DeleteSeedResponse struct{}

type ListSeedsRequest struct {
	PaycycleID string `json:"paycycle_id"`
}

type ListSeedsResponse struct {
	Seeds []*Seed `json:"seeds"`
}

// MarkSeedPaidRequest settles payer's share: "me", "partner" or "both".
type MarkSeedPaidRequest struct {
	SeedID string `json:"seed_id"`
	Payer  string `json:"payer"`
}

type MarkSeedPaidResponse struct {
	Success  bool      `json:"success"`
	Seed     *Seed     `json:"seed"`
	Paycycle *PayCycle `json:"paycycle"`
}

type UnmarkSeedPaidRequest struct {
	SeedID string `json:"seed_id"`
	Payer  string `json:"payer"`
}

type UnmarkSeedPaidResponse struct {
	Success  bool      `json:"success"`
	Seed     *Seed     `json:"seed"`
	Paycycle *PayCycle `json:"paycycle"`
}
