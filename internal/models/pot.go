package models

import "github.com/shopspring/decimal"

// Pot is a savings goal. Savings seeds linked to a pot add to CurrentAmount when paid.
type Pot struct {
	ID            string
	HouseholdID   string
	Name          string
	CurrentAmount decimal.Decimal
	TargetAmount  decimal.Decimal
	CreatedAt     int64
}

// Repayment is a debt balance. Repay seeds linked to it reduce CurrentBalance when paid.
type Repayment struct {
	ID              string
	HouseholdID     string
	Name            string
	CurrentBalance  decimal.Decimal
	StartingBalance decimal.Decimal
	CreatedAt       int64
}
