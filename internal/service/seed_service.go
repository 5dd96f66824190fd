package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/calculator"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/storage"
	plotv1 "github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1/plotv1connect"
)

// SeedService implements the Connect SeedService: the seed ledger and the
// settlement of individual seeds.
type SeedService struct {
	plotv1connect.UnimplementedSeedServiceHandler
	store  storage.Store
	logger *slog.Logger
}

// NewSeedService creates a new SeedService with the given storage backend.
func NewSeedService(store storage.Store, logger *slog.Logger) *SeedService {
	return &SeedService{store: store, logger: logger}
}

// CreateSeed adds a seed to a pay cycle, creating its pot or repayment inline
// when one is given without an existing link.
func (s *SeedService) CreateSeed(ctx context.Context, req *connect.Request[plotv1.CreateSeedRequest]) (*connect.Response[plotv1.CreateSeedResponse], error) {
	msg := req.Msg
	s.logger.Info("CreateSeed request received",
		"paycycle_id", msg.PaycycleID,
		"name", msg.Name,
		"type", msg.Type,
		"payment_source", msg.PaymentSource,
	)

	seed := &models.Seed{
		PaycycleID:        msg.PaycycleID,
		Name:              strings.TrimSpace(msg.Name),
		Amount:            msg.Amount,
		Type:              models.SeedType(msg.Type),
		PaymentSource:     models.PaymentSource(msg.PaymentSource),
		SplitRatio:        nullRatio(msg.SplitRatio),
		IsRecurring:       msg.IsRecurring,
		LinkedPotID:       msg.LinkedPotID,
		LinkedRepaymentID: msg.LinkedRepaymentID,
	}
	if err := validateSeed(seed); err != nil {
		return nil, err
	}
	if msg.Pot != nil && seed.Type != models.SeedSavings {
		return nil, invalidArgument("only savings seeds can create a pot")
	}
	if msg.Repayment != nil && seed.Type != models.SeedRepay {
		return nil, invalidArgument("only repay seeds can create a repayment")
	}

	err := s.store.InTx(ctx, func(q storage.Queries) error {
		_, household, err := callerHousehold(ctx, q)
		if err != nil {
			return err
		}
		cycle, err := householdCycle(ctx, q, household, seed.PaycycleID)
		if err != nil {
			return err
		}
		if cycle.Status == models.CycleCompleted {
			return errCycleClosed
		}
		seed.HouseholdID = household.ID

		if err := s.attachPot(ctx, q, household, seed, msg.Pot); err != nil {
			return err
		}
		if err := s.attachRepayment(ctx, q, household, seed, msg.Repayment); err != nil {
			return err
		}

		applySplit(seed, household)
		if err := q.CreateSeed(ctx, seed); err != nil {
			return err
		}
		_, err = RecomputeAllocations(ctx, q, cycle.ID)
		return err
	})
	if err != nil {
		s.logger.Error("CreateSeed failed", "paycycle_id", msg.PaycycleID, "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Seed created", "seed_id", seed.ID, "amount_me", seed.AmountMe, "amount_partner", seed.AmountPartner)
	return connect.NewResponse(&plotv1.CreateSeedResponse{Seed: toSeed(seed)}), nil
}

// UpdateSeed applies a partial update, re-derives the split and recomputes the
// owning cycle's totals.
func (s *SeedService) UpdateSeed(ctx context.Context, req *connect.Request[plotv1.UpdateSeedRequest]) (*connect.Response[plotv1.UpdateSeedResponse], error) {
	msg := req.Msg
	s.logger.Info("UpdateSeed request received", "seed_id", msg.ID)

	var seed *models.Seed
	err := s.store.InTx(ctx, func(q storage.Queries) error {
		_, household, err := callerHousehold(ctx, q)
		if err != nil {
			return err
		}
		seed, err = householdSeed(ctx, q, household, msg.ID)
		if err != nil {
			return err
		}

		wasJoint := seed.IsJoint()
		if msg.Name != nil {
			seed.Name = strings.TrimSpace(*msg.Name)
		}
		if msg.Amount != nil {
			seed.Amount = *msg.Amount
		}
		if msg.Type != nil {
			seed.Type = models.SeedType(*msg.Type)
		}
		if msg.PaymentSource != nil {
			seed.PaymentSource = models.PaymentSource(*msg.PaymentSource)
		}
		switch {
		case msg.ClearSplitRatio:
			seed.SplitRatio = decimal.NullDecimal{}
		case msg.SplitRatio != nil:
			seed.SplitRatio = nullRatio(msg.SplitRatio)
		}
		if msg.IsRecurring != nil {
			seed.IsRecurring = *msg.IsRecurring
		}
		if msg.LinkedPotID != nil {
			seed.LinkedPotID = *msg.LinkedPotID
		}
		if msg.LinkedRepaymentID != nil {
			seed.LinkedRepaymentID = *msg.LinkedRepaymentID
		}
		if err := validateSeed(seed); err != nil {
			return err
		}
		if msg.LinkedPotID != nil {
			if err := s.attachPot(ctx, q, household, seed, nil); err != nil {
				return err
			}
		}
		if msg.LinkedRepaymentID != nil {
			if err := s.attachRepayment(ctx, q, household, seed, nil); err != nil {
				return err
			}
		}
		if err := updateLinkedPot(ctx, q, seed, msg.Pot); err != nil {
			return err
		}
		if err := updateLinkedRepayment(ctx, q, seed, msg.Repayment); err != nil {
			return err
		}

		// A seed that becomes joint is only settled once both shares are.
		if seed.IsJoint() && !wasJoint {
			seed.IsPaid = seed.IsPaidMe && seed.IsPaidPartner
		}
		applySplit(seed, household)
		if err := q.UpdateSeed(ctx, seed); err != nil {
			return err
		}
		_, err = RecomputeAllocations(ctx, q, seed.PaycycleID)
		return err
	})
	if err != nil {
		s.logger.Error("UpdateSeed failed", "seed_id", msg.ID, "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Seed updated", "seed_id", seed.ID)
	return connect.NewResponse(&plotv1.UpdateSeedResponse{Seed: toSeed(seed)}), nil
}

// DeleteSeed removes a seed and recomputes its cycle's totals.
func (s *SeedService) DeleteSeed(ctx context.Context, req *connect.Request[plotv1.DeleteSeedRequest]) (*connect.Response[plotv1.DeleteSeedResponse], error) {
	s.logger.Info("DeleteSeed request received", "seed_id", req.Msg.ID)

	err := s.store.InTx(ctx, func(q storage.Queries) error {
		_, household, err := callerHousehold(ctx, q)
		if err != nil {
			return err
		}
		seed, err := householdSeed(ctx, q, household, req.Msg.ID)
		if err != nil {
			return err
		}
		if err := q.DeleteSeed(ctx, seed.ID); err != nil {
			return err
		}
		_, err = RecomputeAllocations(ctx, q, seed.PaycycleID)
		return err
	})
	if err != nil {
		s.logger.Error("DeleteSeed failed", "seed_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Seed deleted", "seed_id", req.Msg.ID)
	return connect.NewResponse(&plotv1.DeleteSeedResponse{}), nil
}

// ListSeeds returns a pay cycle's seeds in creation order.
func (s *SeedService) ListSeeds(ctx context.Context, req *connect.Request[plotv1.ListSeedsRequest]) (*connect.Response[plotv1.ListSeedsResponse], error) {
	_, household, err := callerHousehold(ctx, s.store)
	if err != nil {
		return nil, connectError(err)
	}
	cycle, err := householdCycle(ctx, s.store, household, req.Msg.PaycycleID)
	if err != nil {
		return nil, connectError(err)
	}
	seeds, err := s.store.ListSeedsByPaycycle(ctx, cycle.ID)
	if err != nil {
		s.logger.Error("ListSeeds failed", "paycycle_id", cycle.ID, "error", err)
		return nil, connectError(err)
	}

	resp := &plotv1.ListSeedsResponse{Seeds: make([]*plotv1.Seed, len(seeds))}
	for i, seed := range seeds {
		resp.Seeds[i] = toSeed(seed)
	}
	return connect.NewResponse(resp), nil
}

// MarkSeedPaid settles payer's share of a seed, reducing the cycle's remaining
// total and moving money into the linked pot or off the linked repayment.
func (s *SeedService) MarkSeedPaid(ctx context.Context, req *connect.Request[plotv1.MarkSeedPaidRequest]) (*connect.Response[plotv1.MarkSeedPaidResponse], error) {
	seed, cycle, err := s.settle(ctx, req.Msg.SeedID, models.Payer(req.Msg.Payer), true)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&plotv1.MarkSeedPaidResponse{
		Success:  true,
		Seed:     toSeed(seed),
		Paycycle: toPayCycle(cycle),
	}), nil
}

// UnmarkSeedPaid reverses MarkSeedPaid for payer's share. Unmarking either share
// of a joint seed clears IsPaid straight away.
func (s *SeedService) UnmarkSeedPaid(ctx context.Context, req *connect.Request[plotv1.UnmarkSeedPaidRequest]) (*connect.Response[plotv1.UnmarkSeedPaidResponse], error) {
	seed, cycle, err := s.settle(ctx, req.Msg.SeedID, models.Payer(req.Msg.Payer), false)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&plotv1.UnmarkSeedPaidResponse{
		Success:  true,
		Seed:     toSeed(seed),
		Paycycle: toPayCycle(cycle),
	}), nil
}

// settle applies a mark or unmark to the seed flags, the cycle's remaining total
// and the linked pot or repayment in one transaction.
func (s *SeedService) settle(ctx context.Context, seedID string, payer models.Payer, mark bool) (*models.Seed, *models.PayCycle, error) {
	action := "unmark"
	if mark {
		action = "mark"
	}
	s.logger.Info("Settlement request received", "action", action, "seed_id", seedID, "payer", payer)

	if seedID == "" {
		return nil, nil, invalidArgument("seed id is required")
	}
	if !payer.Valid() {
		return nil, nil, invalidArgument("unknown payer %q", payer)
	}

	var seed *models.Seed
	var cycle *models.PayCycle
	var result calculator.Settlement
	err := s.store.InTx(ctx, func(q storage.Queries) error {
		_, household, err := callerHousehold(ctx, q)
		if err != nil {
			return err
		}
		seed, err = householdSeed(ctx, q, household, seedID)
		if err != nil {
			return err
		}

		if mark {
			result = calculator.MarkPaid(seed, payer)
		} else {
			result = calculator.UnmarkPaid(seed, payer)
		}
		if err := q.SetSeedPaidFlags(ctx, seed.ID, result.IsPaid, result.IsPaidMe, result.IsPaidPartner); err != nil {
			return err
		}
		seed.IsPaid, seed.IsPaidMe, seed.IsPaidPartner = result.IsPaid, result.IsPaidMe, result.IsPaidPartner

		cycle, err = q.GetPayCycle(ctx, seed.PaycycleID)
		if err != nil {
			return err
		}
		result.ApplyRemaining(cycle.Totals.Rem)
		if err := q.SetPayCycleTotals(ctx, cycle.ID, cycle.Totals); err != nil {
			return err
		}

		if seed.Type == models.SeedSavings && seed.LinkedPotID != "" {
			pot, err := q.GetPot(ctx, seed.LinkedPotID)
			if err != nil {
				return err
			}
			pot.CurrentAmount = result.PotAmount(pot.CurrentAmount)
			if err := q.UpdatePot(ctx, pot); err != nil {
				return err
			}
		}
		if seed.Type == models.SeedRepay && seed.LinkedRepaymentID != "" {
			repayment, err := q.GetRepayment(ctx, seed.LinkedRepaymentID)
			if err != nil {
				return err
			}
			repayment.CurrentBalance = result.RepaymentBalance(repayment.CurrentBalance)
			if err := q.UpdateRepayment(ctx, repayment); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Settlement failed", "action", action, "seed_id", seedID, "error", err)
		return nil, nil, connectError(err)
	}

	seedSettlements.WithLabelValues(action, string(payer)).Inc()
	s.logger.Info("Settlement applied",
		"action", action,
		"seed_id", seed.ID,
		"payer", payer,
		"amount", result.Amount,
		"is_paid", seed.IsPaid,
	)
	return seed, cycle, nil
}

// attachPot validates the seed's pot link, or creates the inline pot when the
// seed is not linked yet.
func (s *SeedService) attachPot(ctx context.Context, q storage.Queries, h *models.Household, seed *models.Seed, inline *plotv1.PotInput) error {
	if seed.LinkedPotID != "" {
		pot, err := q.GetPot(ctx, seed.LinkedPotID)
		if err != nil {
			return err
		}
		return authorize(h, pot.HouseholdID)
	}
	if inline == nil {
		return nil
	}

	pot := &models.Pot{
		HouseholdID:   h.ID,
		Name:          strings.TrimSpace(inline.Name),
		CurrentAmount: inline.CurrentAmount,
		TargetAmount:  inline.TargetAmount,
	}
	if pot.Name == "" {
		pot.Name = seed.Name
	}
	if err := validatePot(pot); err != nil {
		return err
	}
	if err := q.CreatePot(ctx, pot); err != nil {
		return err
	}
	s.logger.Info("Pot created inline", "pot_id", pot.ID, "seed_name", seed.Name)
	seed.LinkedPotID = pot.ID
	return nil
}

// attachRepayment is the repayment counterpart of attachPot.
func (s *SeedService) attachRepayment(ctx context.Context, q storage.Queries, h *models.Household, seed *models.Seed, inline *plotv1.RepaymentInput) error {
	if seed.LinkedRepaymentID != "" {
		repayment, err := q.GetRepayment(ctx, seed.LinkedRepaymentID)
		if err != nil {
			return err
		}
		return authorize(h, repayment.HouseholdID)
	}
	if inline == nil {
		return nil
	}

	repayment := &models.Repayment{
		HouseholdID:     h.ID,
		Name:            strings.TrimSpace(inline.Name),
		CurrentBalance:  inline.CurrentBalance,
		StartingBalance: inline.StartingBalance,
	}
	if repayment.Name == "" {
		repayment.Name = seed.Name
	}
	if err := validateRepayment(repayment); err != nil {
		return err
	}
	if err := q.CreateRepayment(ctx, repayment); err != nil {
		return err
	}
	s.logger.Info("Repayment created inline", "repayment_id", repayment.ID, "seed_name", seed.Name)
	seed.LinkedRepaymentID = repayment.ID
	return nil
}

func updateLinkedPot(ctx context.Context, q storage.Queries, seed *models.Seed, update *plotv1.PotUpdate) error {
	if update == nil {
		return nil
	}
	if seed.LinkedPotID == "" {
		return invalidArgument("seed %s has no linked pot", seed.ID)
	}
	pot, err := q.GetPot(ctx, seed.LinkedPotID)
	if err != nil {
		return err
	}
	if update.Name != nil {
		pot.Name = strings.TrimSpace(*update.Name)
	}
	if update.CurrentAmount != nil {
		pot.CurrentAmount = *update.CurrentAmount
	}
	if update.TargetAmount != nil {
		pot.TargetAmount = *update.TargetAmount
	}
	if err := validatePot(pot); err != nil {
		return err
	}
	return q.UpdatePot(ctx, pot)
}

func updateLinkedRepayment(ctx context.Context, q storage.Queries, seed *models.Seed, update *plotv1.RepaymentUpdate) error {
	if update == nil {
		return nil
	}
	if seed.LinkedRepaymentID == "" {
		return invalidArgument("seed %s has no linked repayment", seed.ID)
	}
	repayment, err := q.GetRepayment(ctx, seed.LinkedRepaymentID)
	if err != nil {
		return err
	}
	if update.Name != nil {
		repayment.Name = strings.TrimSpace(*update.Name)
	}
	if update.CurrentBalance != nil {
		repayment.CurrentBalance = *update.CurrentBalance
	}
	if update.StartingBalance != nil {
		repayment.StartingBalance = *update.StartingBalance
	}
	if err := validateRepayment(repayment); err != nil {
		return err
	}
	return q.UpdateRepayment(ctx, repayment)
}

// applySplit derives AmountMe and AmountPartner from the seed's current fields.
func applySplit(seed *models.Seed, h *models.Household) {
	split := calculator.CalculateSeedSplit(seed.Amount, seed.PaymentSource, seed.SplitRatio, decimal.NewNullDecimal(h.JointRatio))
	seed.AmountMe = split.AmountMe
	seed.AmountPartner = split.AmountPartner
}

func validateSeed(seed *models.Seed) error {
	if seed.Name == "" {
		return invalidArgument("seed name is required")
	}
	if err := calculator.ValidateAmount(seed.Amount); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	if !seed.Type.Valid() {
		return invalidArgument("unknown seed type %q", seed.Type)
	}
	if !seed.PaymentSource.Valid() {
		return invalidArgument("unknown payment source %q", seed.PaymentSource)
	}
	if seed.SplitRatio.Valid {
		if err := calculator.ValidateRatio(seed.SplitRatio.Decimal); err != nil {
			return connect.NewError(connect.CodeInvalidArgument, err)
		}
	}
	if seed.LinkedPotID != "" && seed.Type != models.SeedSavings {
		return invalidArgument("only savings seeds can link a pot")
	}
	if seed.LinkedRepaymentID != "" && seed.Type != models.SeedRepay {
		return invalidArgument("only repay seeds can link a repayment")
	}
	return nil
}
