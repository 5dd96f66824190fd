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

const householdColumns = `id, name, joint_ratio, currency, pay_cycle_type, pay_day, partner_user_id, created_at`

// CreateHousehold persists a new household to the database.
func (q *queries) CreateHousehold(ctx context.Context, h *models.Household) error {
	// Generate ID if not set
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.CreatedAt == 0 {
		h.CreatedAt = time.Now().Unix()
	}
	if h.Currency == "" {
		h.Currency = models.DefaultCurrency
	}

	_, err := q.db.ExecContext(ctx,
		`INSERT INTO households (`+householdColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.JointRatio, h.Currency, string(h.PayCycleType), h.PayDay,
		nullString(h.PartnerUserID), h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert household: %w", err)
	}

	return nil
}

// GetHousehold retrieves a household by ID.
func (q *queries) GetHousehold(ctx context.Context, id string) (*models.Household, error) {
	h, err := scanHousehold(q.db.QueryRowContext(ctx,
		`SELECT `+householdColumns+` FROM households WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("household", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get household: %w", err)
	}
	return h, nil
}

// GetHouseholdByPartner retrieves the household a user is linked to as partner.
func (q *queries) GetHouseholdByPartner(ctx context.Context, userID string) (*models.Household, error) {
	h, err := scanHousehold(q.db.QueryRowContext(ctx,
		`SELECT `+householdColumns+` FROM households WHERE partner_user_id = ?`, userID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("household for partner", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get household by partner: %w", err)
	}
	return h, nil
}

// UpdateHousehold updates the mutable household settings.
func (q *queries) UpdateHousehold(ctx context.Context, h *models.Household) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE households
		 SET name = ?, joint_ratio = ?, currency = ?, pay_cycle_type = ?, pay_day = ?, partner_user_id = ?
		 WHERE id = ?`,
		h.Name, h.JointRatio, h.Currency, string(h.PayCycleType), h.PayDay, nullString(h.PartnerUserID), h.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update household: %w", err)
	}
	return requireRow(res, "household", h.ID)
}

func scanHousehold(row rowScanner) (*models.Household, error) {
	h := &models.Household{}
	var cycleType string
	var partner sql.NullString
	if err := row.Scan(&h.ID, &h.Name, &h.JointRatio, &h.Currency, &cycleType, &h.PayDay, &partner, &h.CreatedAt); err != nil {
		return nil, err
	}
	h.PayCycleType = models.PayCycleType(cycleType)
	h.PartnerUserID = partner.String
	return h, nil
}
