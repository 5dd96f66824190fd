package plotv1

import "github.com/shopspring/decimal"

// PayCycle carries the cycle row. Totals is keyed by column name
// ("alloc_needs_me" … "rem_repay_joint").
type PayCycle struct {
	ID             string                     `json:"id"`
	HouseholdID    string                     `json:"household_id"`
	Name           string                     `json:"name"`
	Status         string                     `json:"status"`
	StartDate      string                     `json:"start_date"`
	EndDate        string                     `json:"end_date"`
	IncomeMe       decimal.Decimal            `json:"income_me"`
	IncomePartner  decimal.Decimal            `json:"income_partner"`
	Totals         map[string]decimal.Decimal `json:"totals"`
	RitualClosedAt int64                      `json:"ritual_closed_at,omitempty"`
	CreatedAt      int64                      `json:"created_at"`
}

type GetPaycycleRequest struct {
	ID string `json:"id"`
}

type GetPaycycleResponse struct {
	Paycycle *PayCycle `json:"paycycle"`
}

type ListPaycyclesRequest struct{}

type ListPaycyclesResponse struct {
	Paycycles []*PayCycle `json:"paycycles"`
}

type CreateNextPaycycleRequest struct {
	CurrentCycleID string `json:"current_cycle_id"`
}

type CreateNextPaycycleResponse struct {
	CycleID string `json:"cycle_id"`
}

type ResyncDraftFromActiveRequest struct {
	DraftID  string `json:"draft_id"`
	ActiveID string `json:"active_id"`
}

type ResyncDraftFromActiveResponse struct {
	Updated int `json:"updated"`
	Created int `json:"created"`
}

type StartNextCycleRequest struct{}

type StartNextCycleResponse struct {
	Success    bool   `json:"success"`
	NewCycleID string `json:"new_cycle_id"`
}

type CloseRitualRequest struct {
	CycleID string `json:"cycle_id"`
}

type CloseRitualResponse struct {
	Success bool `json:"success"`
}

type UnlockRitualRequest struct {
	CycleID string `json:"cycle_id"`
}

type UnlockRitualResponse struct {
	Success bool `json:"success"`
}
