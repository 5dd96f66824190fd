package service

import (
	"context"
	"fmt"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/calculator"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/storage"
)

// RecomputeAllocations re-derives a pay cycle's 24 alloc_*/rem_* totals from its
// seeds and persists them. It is safe to run at any time and is the recovery path
// for totals that drifted from the ledger.
func RecomputeAllocations(ctx context.Context, q storage.Queries, paycycleID string) (models.AllocationTotals, error) {
	seeds, err := q.ListSeedsByPaycycle(ctx, paycycleID)
	if err != nil {
		return models.AllocationTotals{}, err
	}
	totals := calculator.ComputeAllocations(seeds)
	if err := q.SetPayCycleTotals(ctx, paycycleID, totals); err != nil {
		return models.AllocationTotals{}, fmt.Errorf("recompute allocations: %w", err)
	}
	return totals, nil
}
