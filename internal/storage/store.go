// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// Queries is the set of row-level operations available both on the store and
// inside a transaction.
type Queries interface {
	// CreateUser inserts a new user.
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail and GetUserByID wrap ErrNotFound when no user matches.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// SetUserHousehold makes the user a member of a household.
	SetUserHousehold(ctx context.Context, userID, householdID string) error
	// ListHouseholdMembers returns members plus the linked partner.
	ListHouseholdMembers(ctx context.Context, householdID string) ([]*models.User, error)
	// SetMembersCurrentPaycycle points every household member at a pay cycle
	// and returns how many users were updated.
	SetMembersCurrentPaycycle(ctx context.Context, householdID, paycycleID string) (int64, error)

	// CreateHousehold persists a new household; ID and CreatedAt are assigned when empty.
	CreateHousehold(ctx context.Context, household *models.Household) error
	GetHousehold(ctx context.Context, id string) (*models.Household, error)
	// GetHouseholdByPartner finds the household a user is linked to as partner.
	GetHouseholdByPartner(ctx context.Context, userID string) (*models.Household, error)
	UpdateHousehold(ctx context.Context, household *models.Household) error

	// CreatePayCycle persists a new pay cycle including its totals.
	CreatePayCycle(ctx context.Context, cycle *models.PayCycle) error
	GetPayCycle(ctx context.Context, id string) (*models.PayCycle, error)
	// GetPayCycleByStatus returns the household's cycle in the given status.
	// Only meaningful for draft and active, which are unique per household.
	GetPayCycleByStatus(ctx context.Context, householdID string, status models.CycleStatus) (*models.PayCycle, error)
	// ListPayCycles returns a household's cycles, newest first.
	ListPayCycles(ctx context.Context, householdID string) ([]*models.PayCycle, error)
	UpdatePayCycleStatus(ctx context.Context, id string, status models.CycleStatus) error
	// SetRitualClosedAt sets the ritual timestamp; 0 clears it.
	SetRitualClosedAt(ctx context.Context, id string, closedAt int64) error
	// SetPayCycleTotals overwrites all alloc_* and rem_* columns.
	SetPayCycleTotals(ctx context.Context, id string, totals models.AllocationTotals) error

	// CreateSeed persists a new seed; ID and timestamps are assigned when empty.
	CreateSeed(ctx context.Context, seed *models.Seed) error
	GetSeed(ctx context.Context, id string) (*models.Seed, error)
	UpdateSeed(ctx context.Context, seed *models.Seed) error
	// SetSeedPaidFlags updates only the settlement flags.
	SetSeedPaidFlags(ctx context.Context, id string, isPaid, isPaidMe, isPaidPartner bool) error
	DeleteSeed(ctx context.Context, id string) error
	// ListSeedsByPaycycle returns a cycle's seeds ordered by creation.
	ListSeedsByPaycycle(ctx context.Context, paycycleID string) ([]*models.Seed, error)

	CreatePot(ctx context.Context, pot *models.Pot) error
	GetPot(ctx context.Context, id string) (*models.Pot, error)
	UpdatePot(ctx context.Context, pot *models.Pot) error
	ListPots(ctx context.Context, householdID string) ([]*models.Pot, error)

	CreateRepayment(ctx context.Context, repayment *models.Repayment) error
	GetRepayment(ctx context.Context, id string) (*models.Repayment, error)
	UpdateRepayment(ctx context.Context, repayment *models.Repayment) error
	ListRepayments(ctx context.Context, householdID string) ([]*models.Repayment, error)
}

// Store defines the interface for PLOT storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	Queries

	// InTx runs fn inside a single transaction. The transaction commits when fn
	// returns nil and rolls back otherwise. fn must only use the Queries it is given.
	InTx(ctx context.Context, fn func(q Queries) error) error

	// Close releases any resources held by the store.
	Close() error
}
