// Package models defines the core domain models for PLOT.
//
// # Models
//
//   - Household: the budgeting unit; owns the default joint split ratio and pay-cycle rule
//   - PayCycle: one budgeting period between two paydays, with denormalized totals
//   - Seed: a single planned line item (bill, want, savings contribution, repayment)
//   - Pot: a savings goal balance linked to savings seeds
//   - Repayment: a debt balance linked to repay seeds
//   - User: an account that belongs to a household, either as member or linked partner
//
// # Design Principles
//
// 1. **Exact money**: all amounts are decimal.Decimal, never float64
// 2. **Avoid circular references**: relationships use ID strings instead of pointers
// 3. **Derived columns are a cache**: PayCycle totals are always recomputable from seeds
package models
