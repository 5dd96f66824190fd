package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

// CreatePot persists a new savings pot.
func (q *queries) CreatePot(ctx context.Context, pot *models.Pot) error {
	if pot.ID == "" {
		pot.ID = uuid.New().String()
	}
	if pot.CreatedAt == 0 {
		pot.CreatedAt = time.Now().Unix()
	}

	_, err := q.db.ExecContext(ctx,
		`INSERT INTO pots (id, household_id, name, current_amount, target_amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		pot.ID, pot.HouseholdID, pot.Name, pot.CurrentAmount, pot.TargetAmount, pot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert pot: %w", err)
	}
	return nil
}

// GetPot retrieves a pot by ID.
func (q *queries) GetPot(ctx context.Context, id string) (*models.Pot, error) {
	pot := &models.Pot{}
	err := q.db.QueryRowContext(ctx,
		`SELECT id, household_id, name, current_amount, target_amount, created_at FROM pots WHERE id = ?`,
		id,
	).Scan(&pot.ID, &pot.HouseholdID, &pot.Name, &pot.CurrentAmount, &pot.TargetAmount, &pot.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("pot", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pot: %w", err)
	}
	return pot, nil
}

// UpdatePot writes the pot's name and amounts.
func (q *queries) UpdatePot(ctx context.Context, pot *models.Pot) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE pots SET name = ?, current_amount = ?, target_amount = ? WHERE id = ?`,
		pot.Name, pot.CurrentAmount, pot.TargetAmount, pot.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pot: %w", err)
	}
	return requireRow(res, "pot", pot.ID)
}

// ListPots retrieves a household's pots.
func (q *queries) ListPots(ctx context.Context, householdID string) ([]*models.Pot, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, household_id, name, current_amount, target_amount, created_at
		 FROM pots WHERE household_id = ? ORDER BY created_at, rowid`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pots: %w", err)
	}
	defer rows.Close()

	var pots []*models.Pot
	for rows.Next() {
		pot := &models.Pot{}
		if err := rows.Scan(&pot.ID, &pot.HouseholdID, &pot.Name, &pot.CurrentAmount, &pot.TargetAmount, &pot.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pot: %w", err)
		}
		pots = append(pots, pot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pots: %w", err)
	}
	return pots, nil
}

// CreateRepayment persists a new debt balance.
func (q *queries) CreateRepayment(ctx context.Context, r *models.Repayment) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().Unix()
	}

	_, err := q.db.ExecContext(ctx,
		`INSERT INTO repayments (id, household_id, name, current_balance, starting_balance, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.HouseholdID, r.Name, r.CurrentBalance, r.StartingBalance, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert repayment: %w", err)
	}
	return nil
}

// GetRepayment retrieves a repayment by ID.
func (q *queries) GetRepayment(ctx context.Context, id string) (*models.Repayment, error) {
	r := &models.Repayment{}
	err := q.db.QueryRowContext(ctx,
		`SELECT id, household_id, name, current_balance, starting_balance, created_at FROM repayments WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.HouseholdID, &r.Name, &r.CurrentBalance, &r.StartingBalance, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("repayment", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get repayment: %w", err)
	}
	return r, nil
}

// UpdateRepayment writes the repayment's name and balances.
func (q *queries) UpdateRepayment(ctx context.Context, r *models.Repayment) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE repayments SET name = ?, current_balance = ?, starting_balance = ? WHERE id = ?`,
		r.Name, r.CurrentBalance, r.StartingBalance, r.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update repayment: %w", err)
	}
	return requireRow(res, "repayment", r.ID)
}

// ListRepayments retrieves a household's repayments.
func (q *queries) ListRepayments(ctx context.Context, householdID string) ([]*models.Repayment, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, household_id, name, current_balance, starting_balance, created_at
		 FROM repayments WHERE household_id = ? ORDER BY created_at, rowid`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list repayments: %w", err)
	}
	defer rows.Close()

	var repayments []*models.Repayment
	for rows.Next() {
		r := &models.Repayment{}
		if err := rows.Scan(&r.ID, &r.HouseholdID, &r.Name, &r.CurrentBalance, &r.StartingBalance, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan repayment: %w", err)
		}
		repayments = append(repayments, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate repayments: %w", err)
	}
	return repayments, nil
}
