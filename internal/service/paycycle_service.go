package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/calculator"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/storage"
	plotv1 "github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1/plotv1connect"
)

// PaycycleService implements the Connect PaycycleService: cycle rollover, draft
// resync and the ritual lifecycle.
type PaycycleService struct {
	plotv1connect.UnimplementedPaycycleServiceHandler
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewPaycycleService creates a new PaycycleService with the given storage backend.
func NewPaycycleService(store storage.Store, logger *slog.Logger) *PaycycleService {
	return &PaycycleService{store: store, logger: logger, now: time.Now}
}

// GetPaycycle returns a single pay cycle with its totals.
func (s *PaycycleService) GetPaycycle(ctx context.Context, req *connect.Request[plotv1.GetPaycycleRequest]) (*connect.Response[plotv1.GetPaycycleResponse], error) {
	_, household, err := callerHousehold(ctx, s.store)
	if err != nil {
		return nil, connectError(err)
	}
	cycle, err := householdCycle(ctx, s.store, household, req.Msg.ID)
	if err != nil {
		s.logger.Warn("GetPaycycle failed", "paycycle_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&plotv1.GetPaycycleResponse{Paycycle: toPayCycle(cycle)}), nil
}

// ListPaycycles returns the caller's pay cycles, newest first.
func (s *PaycycleService) ListPaycycles(ctx context.Context, req *connect.Request[plotv1.ListPaycyclesRequest]) (*connect.Response[plotv1.ListPaycyclesResponse], error) {
	_, household, err := callerHousehold(ctx, s.store)
	if err != nil {
		return nil, connectError(err)
	}
	cycles, err := s.store.ListPayCycles(ctx, household.ID)
	if err != nil {
		s.logger.Error("ListPaycycles failed", "household_id", household.ID, "error", err)
		return nil, connectError(err)
	}

	resp := &plotv1.ListPaycyclesResponse{Paycycles: make([]*plotv1.PayCycle, len(cycles))}
	for i, c := range cycles {
		resp.Paycycles[i] = toPayCycle(c)
	}
	return connect.NewResponse(resp), nil
}

// CreateNextPaycycle opens a draft for the period after the given cycle and
// carries its recurring seeds over unpaid.
func (s *PaycycleService) CreateNextPaycycle(ctx context.Context, req *connect.Request[plotv1.CreateNextPaycycleRequest]) (*connect.Response[plotv1.CreateNextPaycycleResponse], error) {
	s.logger.Info("CreateNextPaycycle request received", "current_cycle_id", req.Msg.CurrentCycleID)

	var next *models.PayCycle
	err := s.store.InTx(ctx, func(q storage.Queries) error {
		_, household, err := callerHousehold(ctx, q)
		if err != nil {
			return err
		}
		current, err := householdCycle(ctx, q, household, req.Msg.CurrentCycleID)
		if err != nil {
			return err
		}
		if _, err := q.GetPayCycleByStatus(ctx, household.ID, models.CycleDraft); err == nil {
			return errDraftExists
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		next, err = rollover(ctx, q, household, current, models.CycleDraft)
		return err
	})
	if err != nil {
		s.logger.Error("CreateNextPaycycle failed", "current_cycle_id", req.Msg.CurrentCycleID, "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Draft pay cycle created",
		"paycycle_id", next.ID,
		"start_date", next.StartDate.Format(models.DateFormat),
		"end_date", next.EndDate.Format(models.DateFormat),
	)
	return connect.NewResponse(&plotv1.CreateNextPaycycleResponse{CycleID: next.ID}), nil
}

// ResyncDraftFromActive copies the active cycle's recurring seeds into the draft.
// Seeds are matched on name and type, so a seed renamed in the active cycle is
// added to the draft alongside the old one.
func (s *PaycycleService) ResyncDraftFromActive(ctx context.Context, req *connect.Request[plotv1.ResyncDraftFromActiveRequest]) (*connect.Response[plotv1.ResyncDraftFromActiveResponse], error) {
	msg := req.Msg
	s.logger.Info("ResyncDraftFromActive request received", "draft_id", msg.DraftID, "active_id", msg.ActiveID)

	var created, updated int
	err := s.store.InTx(ctx, func(q storage.Queries) error {
		_, household, err := callerHousehold(ctx, q)
		if err != nil {
			return err
		}
		draft, err := householdCycle(ctx, q, household, msg.DraftID)
		if err != nil {
			return err
		}
		active, err := householdCycle(ctx, q, household, msg.ActiveID)
		if err != nil {
			return err
		}
		if draft.Status != models.CycleDraft {
			return connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("pay cycle %s is %s, not draft", draft.ID, draft.Status))
		}
		if active.Status != models.CycleActive {
			return connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("pay cycle %s is %s, not active", active.ID, active.Status))
		}

		draftSeeds, err := q.ListSeedsByPaycycle(ctx, draft.ID)
		if err != nil {
			return err
		}
		byKey := make(map[string]*models.Seed, len(draftSeeds))
		for _, seed := range draftSeeds {
			if _, ok := byKey[seed.ResyncKey()]; !ok {
				byKey[seed.ResyncKey()] = seed
			}
		}

		activeSeeds, err := q.ListSeedsByPaycycle(ctx, active.ID)
		if err != nil {
			return err
		}
		for _, src := range activeSeeds {
			if !src.IsRecurring {
				continue
			}
			if match, ok := byKey[src.ResyncKey()]; ok {
				match.Amount = src.Amount
				match.PaymentSource = src.PaymentSource
				match.SplitRatio = src.SplitRatio
				match.AmountMe = src.AmountMe
				match.AmountPartner = src.AmountPartner
				match.IsRecurring = src.IsRecurring
				match.LinkedPotID = src.LinkedPotID
				match.LinkedRepaymentID = src.LinkedRepaymentID
				if err := q.UpdateSeed(ctx, match); err != nil {
					return err
				}
				updated++
				continue
			}

			clone := cloneSeed(src, draft.ID)
			if err := q.CreateSeed(ctx, clone); err != nil {
				return err
			}
			byKey[clone.ResyncKey()] = clone
			created++
		}

		_, err = RecomputeAllocations(ctx, q, draft.ID)
		return err
	})
	if err != nil {
		s.logger.Error("ResyncDraftFromActive failed", "draft_id", msg.DraftID, "active_id", msg.ActiveID, "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Draft resynced", "draft_id", msg.DraftID, "created", created, "updated", updated)
	return connect.NewResponse(&plotv1.ResyncDraftFromActiveResponse{Created: created, Updated: updated}), nil
}

// StartNextCycle completes the active cycle and makes the draft, or a freshly
// rolled-over cycle when there is no draft, the new active cycle. Every household
// member is pointed at the new cycle.
func (s *PaycycleService) StartNextCycle(ctx context.Context, req *connect.Request[plotv1.StartNextCycleRequest]) (*connect.Response[plotv1.StartNextCycleResponse], error) {
	var oldID, newID string
	var members int64
	err := s.store.InTx(ctx, func(q storage.Queries) error {
		_, household, err := callerHousehold(ctx, q)
		if err != nil {
			return err
		}
		active, err := q.GetPayCycleByStatus(ctx, household.ID, models.CycleActive)
		if errors.Is(err, storage.ErrNotFound) {
			return errNoActiveCycle
		}
		if err != nil {
			return err
		}
		oldID = active.ID
		draft, err := q.GetPayCycleByStatus(ctx, household.ID, models.CycleDraft)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		// The old cycle leaves "active" before another cycle can take its place.
		if err := q.UpdatePayCycleStatus(ctx, active.ID, models.CycleCompleted); err != nil {
			return err
		}
		if !active.RitualClosed() {
			if err := q.SetRitualClosedAt(ctx, active.ID, s.now().Unix()); err != nil {
				return err
			}
		}

		if draft != nil {
			if err := q.UpdatePayCycleStatus(ctx, draft.ID, models.CycleActive); err != nil {
				return err
			}
			newID = draft.ID
		} else {
			next, err := rollover(ctx, q, household, active, models.CycleActive)
			if err != nil {
				return err
			}
			newID = next.ID
		}

		members, err = q.SetMembersCurrentPaycycle(ctx, household.ID, newID)
		return err
	})
	if err != nil {
		s.logger.Error("StartNextCycle failed", "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Next cycle started", "completed_cycle_id", oldID, "new_cycle_id", newID, "members_updated", members)
	return connect.NewResponse(&plotv1.StartNextCycleResponse{Success: true, NewCycleID: newID}), nil
}

// CloseRitual marks the cycle's ritual as closed.
func (s *PaycycleService) CloseRitual(ctx context.Context, req *connect.Request[plotv1.CloseRitualRequest]) (*connect.Response[plotv1.CloseRitualResponse], error) {
	if err := s.setRitual(ctx, req.Msg.CycleID, s.now().Unix()); err != nil {
		return nil, err
	}
	return connect.NewResponse(&plotv1.CloseRitualResponse{Success: true}), nil
}

// UnlockRitual reopens a closed ritual.
func (s *PaycycleService) UnlockRitual(ctx context.Context, req *connect.Request[plotv1.UnlockRitualRequest]) (*connect.Response[plotv1.UnlockRitualResponse], error) {
	if err := s.setRitual(ctx, req.Msg.CycleID, 0); err != nil {
		return nil, err
	}
	return connect.NewResponse(&plotv1.UnlockRitualResponse{Success: true}), nil
}

func (s *PaycycleService) setRitual(ctx context.Context, cycleID string, closedAt int64) error {
	s.logger.Info("Ritual update", "paycycle_id", cycleID, "closed", closedAt != 0)

	err := s.store.InTx(ctx, func(q storage.Queries) error {
		_, household, err := callerHousehold(ctx, q)
		if err != nil {
			return err
		}
		cycle, err := householdCycle(ctx, q, household, cycleID)
		if err != nil {
			return err
		}
		return q.SetRitualClosedAt(ctx, cycle.ID, closedAt)
	})
	if err != nil {
		s.logger.Error("Ritual update failed", "paycycle_id", cycleID, "error", err)
		return connectError(err)
	}
	return nil
}

// rollover creates the cycle that follows from, carrying over the income snapshot
// and cloning recurring seeds unpaid, then recomputes its totals.
func rollover(ctx context.Context, q storage.Queries, household *models.Household, from *models.PayCycle, status models.CycleStatus) (*models.PayCycle, error) {
	start, end, err := calculator.NextCycleRange(from.EndDate, household.PayRule())
	if err != nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, err)
	}

	next := &models.PayCycle{
		HouseholdID:   household.ID,
		Name:          calculator.CycleName(start),
		Status:        status,
		StartDate:     start,
		EndDate:       end,
		IncomeMe:      from.IncomeMe,
		IncomePartner: from.IncomePartner,
		Totals:        models.NewAllocationTotals(),
	}
	if err := q.CreatePayCycle(ctx, next); err != nil {
		return nil, err
	}

	seeds, err := q.ListSeedsByPaycycle(ctx, from.ID)
	if err != nil {
		return nil, err
	}
	for _, seed := range seeds {
		if !seed.IsRecurring {
			continue
		}
		if err := q.CreateSeed(ctx, cloneSeed(seed, next.ID)); err != nil {
			return nil, err
		}
	}

	next.Totals, err = RecomputeAllocations(ctx, q, next.ID)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// cloneSeed copies a seed into another cycle with its settlement flags reset.
func cloneSeed(src *models.Seed, paycycleID string) *models.Seed {
	clone := *src
	clone.ID = ""
	clone.PaycycleID = paycycleID
	clone.IsPaid = false
	clone.IsPaidMe = false
	clone.IsPaidPartner = false
	clone.CreatedAt = 0
	clone.UpdatedAt = 0
	return &clone
}
