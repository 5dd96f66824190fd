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

const seedColumns = `id, household_id, paycycle_id, name, amount, type, payment_source, split_ratio,
	amount_me, amount_partner, is_recurring, is_paid, is_paid_me, is_paid_partner,
	linked_pot_id, linked_repayment_id, created_at, updated_at`

// CreateSeed persists a new seed to the database.
func (q *queries) CreateSeed(ctx context.Context, seed *models.Seed) error {
	// Generate ID if not set
	if seed.ID == "" {
		seed.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if seed.CreatedAt == 0 {
		seed.CreatedAt = now
	}
	seed.UpdatedAt = now

	_, err := q.db.ExecContext(ctx,
		`INSERT INTO seeds (`+seedColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seed.ID, seed.HouseholdID, seed.PaycycleID, seed.Name, seed.Amount,
		string(seed.Type), string(seed.PaymentSource), seed.SplitRatio,
		seed.AmountMe, seed.AmountPartner,
		seed.IsRecurring, seed.IsPaid, seed.IsPaidMe, seed.IsPaidPartner,
		nullString(seed.LinkedPotID), nullString(seed.LinkedRepaymentID),
		seed.CreatedAt, seed.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert seed: %w", err)
	}

	return nil
}

// GetSeed retrieves a seed by ID.
func (q *queries) GetSeed(ctx context.Context, id string) (*models.Seed, error) {
	seed, err := scanSeed(q.db.QueryRowContext(ctx,
		`SELECT `+seedColumns+` FROM seeds WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("seed", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get seed: %w", err)
	}
	return seed, nil
}

// UpdateSeed writes every mutable column of the seed.
func (q *queries) UpdateSeed(ctx context.Context, seed *models.Seed) error {
	seed.UpdatedAt = time.Now().Unix()

	res, err := q.db.ExecContext(ctx,
		`UPDATE seeds SET
		    name = ?, amount = ?, type = ?, payment_source = ?, split_ratio = ?,
		    amount_me = ?, amount_partner = ?, is_recurring = ?,
		    is_paid = ?, is_paid_me = ?, is_paid_partner = ?,
		    linked_pot_id = ?, linked_repayment_id = ?, updated_at = ?
		 WHERE id = ?`,
		seed.Name, seed.Amount, string(seed.Type), string(seed.PaymentSource), seed.SplitRatio,
		seed.AmountMe, seed.AmountPartner, seed.IsRecurring,
		seed.IsPaid, seed.IsPaidMe, seed.IsPaidPartner,
		nullString(seed.LinkedPotID), nullString(seed.LinkedRepaymentID), seed.UpdatedAt,
		seed.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update seed: %w", err)
	}
	return requireRow(res, "seed", seed.ID)
}

// SetSeedPaidFlags updates the settlement flags of a seed.
func (q *queries) SetSeedPaidFlags(ctx context.Context, id string, isPaid, isPaidMe, isPaidPartner bool) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE seeds SET is_paid = ?, is_paid_me = ?, is_paid_partner = ?, updated_at = ? WHERE id = ?`,
		isPaid, isPaidMe, isPaidPartner, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update seed paid flags: %w", err)
	}
	return requireRow(res, "seed", id)
}

// DeleteSeed removes a seed by ID.
func (q *queries) DeleteSeed(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, "DELETE FROM seeds WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete seed: %w", err)
	}
	return requireRow(res, "seed", id)
}

// ListSeedsByPaycycle retrieves all seeds of a pay cycle in creation order.
func (q *queries) ListSeedsByPaycycle(ctx context.Context, paycycleID string) ([]*models.Seed, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+seedColumns+` FROM seeds WHERE paycycle_id = ? ORDER BY created_at, rowid`,
		paycycleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list seeds: %w", err)
	}
	defer rows.Close()

	var seeds []*models.Seed
	for rows.Next() {
		seed, err := scanSeed(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seed: %w", err)
		}
		seeds = append(seeds, seed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate seeds: %w", err)
	}

	return seeds, nil
}

func scanSeed(row rowScanner) (*models.Seed, error) {
	seed := &models.Seed{}
	var typ, source string
	var potID, repaymentID sql.NullString

	err := row.Scan(
		&seed.ID, &seed.HouseholdID, &seed.PaycycleID, &seed.Name, &seed.Amount,
		&typ, &source, &seed.SplitRatio,
		&seed.AmountMe, &seed.AmountPartner,
		&seed.IsRecurring, &seed.IsPaid, &seed.IsPaidMe, &seed.IsPaidPartner,
		&potID, &repaymentID, &seed.CreatedAt, &seed.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	seed.Type = models.SeedType(typ)
	seed.PaymentSource = models.PaymentSource(source)
	seed.LinkedPotID = potID.String
	seed.LinkedRepaymentID = repaymentID.String
	return seed, nil
}
