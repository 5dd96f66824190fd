package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

const userColumns = `id, email, display_name, password_hash, household_id, current_paycycle_id, created_at, updated_at`

// CreateUser inserts a new user into the database.
func (q *queries) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := q.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.DisplayName,
		user.PasswordHash,
		nullString(user.HouseholdID),
		nullString(user.CurrentPaycycleID),
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (q *queries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	user, err := scanUser(q.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("user", email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (q *queries) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanUser(q.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("user", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// SetUserHousehold makes the user a member of the household.
func (q *queries) SetUserHousehold(ctx context.Context, userID, householdID string) error {
	res, err := q.db.ExecContext(ctx,
		"UPDATE users SET household_id = ?, updated_at = ? WHERE id = ?",
		nullString(householdID), time.Now().Unix(), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to set user household: %w", err)
	}
	return requireRow(res, "user", userID)
}

// ListHouseholdMembers returns the household's members and its linked partner.
func (q *queries) ListHouseholdMembers(ctx context.Context, householdID string) ([]*models.User, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE household_id = ?
		    OR id = (SELECT partner_user_id FROM households WHERE id = ?)
		 ORDER BY created_at`,
		householdID, householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list household members: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// SetMembersCurrentPaycycle points every member (and the partner) at paycycleID.
func (q *queries) SetMembersCurrentPaycycle(ctx context.Context, householdID, paycycleID string) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`UPDATE users SET current_paycycle_id = ?, updated_at = ?
		 WHERE household_id = ?
		    OR id = (SELECT partner_user_id FROM households WHERE id = ?)`,
		paycycleID, time.Now().Unix(), householdID, householdID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update members' current pay cycle: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count updated members: %w", err)
	}
	return n, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	var householdID, paycycleID sql.NullString
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.PasswordHash,
		&householdID,
		&paycycleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.HouseholdID = householdID.String
	user.CurrentPaycycleID = paycycleID.String
	return user, nil
}

// requireRow turns a zero-row update into a not-found error.
func requireRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return notFound(entity, id)
	}
	return nil
}
