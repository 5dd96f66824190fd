package plotv1

import "github.com/shopspring/decimal"

type Household struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	JointRatio    decimal.Decimal `json:"joint_ratio"`
	Currency      string          `json:"currency"`
	PayCycleType  string          `json:"pay_cycle_type"`
	PayDay        int             `json:"pay_day,omitempty"`
	PartnerUserID string          `json:"partner_user_id,omitempty"`
	CreatedAt     int64           `json:"created_at"`
}

type Pot struct {
	ID            string          `json:"id"`
	HouseholdID   string          `json:"household_id"`
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CreatedAt     int64           `json:"created_at"`
}

type Repayment struct {
	ID              string          `json:"id"`
	HouseholdID     string          `json:"household_id"`
	Name            string          `json:"name"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
	CreatedAt       int64           `json:"created_at"`
}

// CreateHouseholdRequest creates the caller's household and its first active pay cycle.
// FirstCycleStart defaults to today (YYYY-MM-DD).
type CreateHouseholdRequest struct {
	Name            string           `json:"name"`
	JointRatio      *decimal.Decimal `json:"joint_ratio,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	PayCycleType    string           `json:"pay_cycle_type"`
	PayDay          int              `json:"pay_day,omitempty"`
	FirstCycleStart string           `json:"first_cycle_start,omitempty"`
	IncomeMe        decimal.Decimal  `json:"income_me"`
	IncomePartner   decimal.Decimal  `json:"income_partner"`
}

type CreateHouseholdResponse struct {
	Household *Household `json:"household"`
	Paycycle  *PayCycle  `json:"paycycle"`
}

type GetHouseholdRequest struct{}

type GetHouseholdResponse struct {
	Household *Household `json:"household"`
	Members   []*User    `json:"members"`
}

// UpdateHouseholdRequest applies the non-nil fields.
type UpdateHouseholdRequest struct {
	Name         *string          `json:"name,omitempty"`
	JointRatio   *decimal.Decimal `json:"joint_ratio,omitempty"`
	Currency     *string          `json:"currency,omitempty"`
	PayCycleType *string          `json:"pay_cycle_type,omitempty"`
	PayDay       *int             `json:"pay_day,omitempty"`
}

type UpdateHouseholdResponse struct {
	Household *Household `json:"household"`
}

// LinkPartnerRequest links an existing account, by email, as the household's partner.
type LinkPartnerRequest struct {
	Email string `json:"email"`
}

type LinkPartnerResponse struct {
	Household *Household `json:"household"`
}

type CreatePotRequest struct {
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
}

type CreatePotResponse struct {
	Pot *Pot `json:"pot"`
}

type ListPotsRequest struct{}

type ListPotsResponse struct {
	Pots []*Pot `json:"pots"`
}

type CreateRepaymentRequest struct {
	Name            string          `json:"name"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
}

type CreateRepaymentResponse struct {
	Repayment *Repayment `json:"repayment"`
}

type ListRepaymentsRequest struct{}

type ListRepaymentsResponse struct {
	Repayments []*Repayment `json:"repayments"`
}
