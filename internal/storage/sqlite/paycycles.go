package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

const paycycleBaseColumns = `id, household_id, name, status, start_date, end_date, income_me, income_partner, ritual_closed_at, created_at`

// totalColumns lists alloc_* then rem_* columns in models.Buckets() order.
var totalColumns = func() []string {
	buckets := models.Buckets()
	cols := make([]string, 0, 2*len(buckets))
	for _, b := range buckets {
		cols = append(cols, b.Column("alloc"))
	}
	for _, b := range buckets {
		cols = append(cols, b.Column("rem"))
	}
	return cols
}()

var paycycleColumns = paycycleBaseColumns + ", " + strings.Join(totalColumns, ", ")

// totalArgs flattens totals into column order.
func totalArgs(totals models.AllocationTotals) []any {
	buckets := models.Buckets()
	args := make([]any, 0, 2*len(buckets))
	for _, b := range buckets {
		args = append(args, totals.Alloc.Get(b))
	}
	for _, b := range buckets {
		args = append(args, totals.Rem.Get(b))
	}
	return args
}

// CreatePayCycle persists a new pay cycle to the database.
func (q *queries) CreatePayCycle(ctx context.Context, c *models.PayCycle) error {
	// Generate ID if not set
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}
	if c.Totals.Alloc == nil || c.Totals.Rem == nil {
		c.Totals = models.NewAllocationTotals()
	}

	args := []any{
		c.ID, c.HouseholdID, c.Name, string(c.Status),
		c.StartDate.Format(models.DateFormat), c.EndDate.Format(models.DateFormat),
		c.IncomeMe, c.IncomePartner, nullInt64(c.RitualClosedAt), c.CreatedAt,
	}
	args = append(args, totalArgs(c.Totals)...)

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO paycycles (`+paycycleColumns+`) VALUES (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to insert pay cycle: %w", err)
	}

	return nil
}

// GetPayCycle retrieves a pay cycle by ID.
func (q *queries) GetPayCycle(ctx context.Context, id string) (*models.PayCycle, error) {
	c, err := scanPayCycle(q.db.QueryRowContext(ctx,
		`SELECT `+paycycleColumns+` FROM paycycles WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("pay cycle", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pay cycle: %w", err)
	}
	return c, nil
}

// GetPayCycleByStatus retrieves the household's pay cycle in the given status.
func (q *queries) GetPayCycleByStatus(ctx context.Context, householdID string, status models.CycleStatus) (*models.PayCycle, error) {
	c, err := scanPayCycle(q.db.QueryRowContext(ctx,
		`SELECT `+paycycleColumns+` FROM paycycles
		 WHERE household_id = ? AND status = ?
		 ORDER BY start_date DESC LIMIT 1`,
		householdID, string(status),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(string(status)+" pay cycle", householdID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s pay cycle: %w", status, err)
	}
	return c, nil
}

// ListPayCycles retrieves all pay cycles of a household, newest first.
func (q *queries) ListPayCycles(ctx context.Context, householdID string) ([]*models.PayCycle, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+paycycleColumns+` FROM paycycles WHERE household_id = ? ORDER BY start_date DESC`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay cycles: %w", err)
	}
	defer rows.Close()

	var cycles []*models.PayCycle
	for rows.Next() {
		c, err := scanPayCycle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay cycle: %w", err)
		}
		cycles = append(cycles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pay cycles: %w", err)
	}

	return cycles, nil
}

// UpdatePayCycleStatus moves a pay cycle to a new lifecycle status.
func (q *queries) UpdatePayCycleStatus(ctx context.Context, id string, status models.CycleStatus) error {
	res, err := q.db.ExecContext(ctx, "UPDATE paycycles SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update pay cycle status: %w", err)
	}
	return requireRow(res, "pay cycle", id)
}

// SetRitualClosedAt sets or clears (closedAt == 0) the ritual timestamp.
func (q *queries) SetRitualClosedAt(ctx context.Context, id string, closedAt int64) error {
	res, err := q.db.ExecContext(ctx, "UPDATE paycycles SET ritual_closed_at = ? WHERE id = ?", nullInt64(closedAt), id)
	if err != nil {
		return fmt.Errorf("failed to update ritual timestamp: %w", err)
	}
	return requireRow(res, "pay cycle", id)
}

// SetPayCycleTotals overwrites every alloc_* and rem_* column.
func (q *queries) SetPayCycleTotals(ctx context.Context, id string, totals models.AllocationTotals) error {
	assignments := make([]string, len(totalColumns))
	for i, col := range totalColumns {
		assignments[i] = col + " = ?"
	}

	args := append(totalArgs(totals), id)
	res, err := q.db.ExecContext(ctx,
		`UPDATE paycycles SET `+strings.Join(assignments, ", ")+` WHERE id = ?`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to update pay cycle totals: %w", err)
	}
	return requireRow(res, "pay cycle", id)
}

func scanPayCycle(row rowScanner) (*models.PayCycle, error) {
	c := &models.PayCycle{Totals: models.NewAllocationTotals()}
	var status, start, end string
	var closedAt sql.NullInt64

	values := make([]decimal.Decimal, len(totalColumns))
	dest := []any{
		&c.ID, &c.HouseholdID, &c.Name, &status, &start, &end,
		&c.IncomeMe, &c.IncomePartner, &closedAt, &c.CreatedAt,
	}
	for i := range values {
		dest = append(dest, &values[i])
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	var err error
	if c.StartDate, err = time.Parse(models.DateFormat, start); err != nil {
		return nil, fmt.Errorf("invalid start_date %q: %w", start, err)
	}
	if c.EndDate, err = time.Parse(models.DateFormat, end); err != nil {
		return nil, fmt.Errorf("invalid end_date %q: %w", end, err)
	}
	c.Status = models.CycleStatus(status)
	c.RitualClosedAt = closedAt.Int64

	buckets := models.Buckets()
	for i, b := range buckets {
		c.Totals.Alloc[b] = values[i]
		c.Totals.Rem[b] = values[len(buckets)+i]
	}

	return c, nil
}
