package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/calculator"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/storage"
	plotv1 "github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1/plotv1connect"
)

// HouseholdService implements the Connect HouseholdService.
type HouseholdService struct {
	plotv1connect.UnimplementedHouseholdServiceHandler
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewHouseholdService creates a new HouseholdService with the given storage backend.
func NewHouseholdService(store storage.Store, logger *slog.Logger) *HouseholdService {
	return &HouseholdService{store: store, logger: logger, now: time.Now}
}

// CreateHousehold creates the caller's household and opens its first active pay cycle.
func (s *HouseholdService) CreateHousehold(ctx context.Context, req *connect.Request[plotv1.CreateHouseholdRequest]) (*connect.Response[plotv1.CreateHouseholdResponse], error) {
	msg := req.Msg
	s.logger.Info("CreateHousehold request received", "name", msg.Name, "pay_cycle_type", msg.PayCycleType)

	household := &models.Household{
		Name:         strings.TrimSpace(msg.Name),
		JointRatio:   models.DefaultJointRatio,
		Currency:     models.DefaultCurrency,
		PayCycleType: models.PayCycleType(msg.PayCycleType),
		PayDay:       msg.PayDay,
	}
	if msg.JointRatio != nil {
		household.JointRatio = *msg.JointRatio
	}
	if msg.Currency != "" {
		household.Currency = strings.ToUpper(msg.Currency)
	}
	if err := validateHousehold(household); err != nil {
		return nil, err
	}
	if !nonNegative(msg.IncomeMe, msg.IncomePartner) {
		return nil, invalidArgument("income must not be negative")
	}

	start := s.now()
	if msg.FirstCycleStart != "" {
		parsed, err := time.Parse(models.DateFormat, msg.FirstCycleStart)
		if err != nil {
			return nil, invalidArgument("invalid first cycle start %q: %v", msg.FirstCycleStart, err)
		}
		start = parsed
	}
	start, end, err := calculator.CycleRangeFrom(start, household.PayRule())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	cycle := &models.PayCycle{
		Name:          calculator.CycleName(start),
		Status:        models.CycleActive,
		StartDate:     start,
		EndDate:       end,
		IncomeMe:      msg.IncomeMe,
		IncomePartner: msg.IncomePartner,
		Totals:        models.NewAllocationTotals(),
	}

	err = s.store.InTx(ctx, func(q storage.Queries) error {
		user, err := caller(ctx, q)
		if err != nil {
			return err
		}
		if _, err := householdOf(ctx, q, user); err == nil {
			return errHasHousehold
		} else if !errors.Is(err, errNoHousehold) {
			return err
		}

		if err := q.CreateHousehold(ctx, household); err != nil {
			return err
		}
		if err := q.SetUserHousehold(ctx, user.ID, household.ID); err != nil {
			return err
		}
		cycle.HouseholdID = household.ID
		if err := q.CreatePayCycle(ctx, cycle); err != nil {
			return err
		}
		_, err = q.SetMembersCurrentPaycycle(ctx, household.ID, cycle.ID)
		return err
	})
	if err != nil {
		s.logger.Error("CreateHousehold failed", "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Household created", "household_id", household.ID, "paycycle_id", cycle.ID)
	return connect.NewResponse(&plotv1.CreateHouseholdResponse{
		Household: toHousehold(household),
		Paycycle:  toPayCycle(cycle),
	}), nil
}

// GetHousehold returns the caller's household and its members.
func (s *HouseholdService) GetHousehold(ctx context.Context, req *connect.Request[plotv1.GetHouseholdRequest]) (*connect.Response[plotv1.GetHouseholdResponse], error) {
	_, household, err := callerHousehold(ctx, s.store)
	if err != nil {
		return nil, connectError(err)
	}

	members, err := s.store.ListHouseholdMembers(ctx, household.ID)
	if err != nil {
		s.logger.Error("GetHousehold failed", "household_id", household.ID, "error", err)
		return nil, connectError(err)
	}

	resp := &plotv1.GetHouseholdResponse{
		Household: toHousehold(household),
		Members:   make([]*plotv1.User, len(members)),
	}
	for i, m := range members {
		resp.Members[i] = toUser(m)
	}
	return connect.NewResponse(resp), nil
}

// UpdateHousehold changes the household's settings. Existing seeds keep their
// persisted split until they are next edited.
func (s *HouseholdService) UpdateHousehold(ctx context.Context, req *connect.Request[plotv1.UpdateHouseholdRequest]) (*connect.Response[plotv1.UpdateHouseholdResponse], error) {
	msg := req.Msg
	var household *models.Household

	err := s.store.InTx(ctx, func(q storage.Queries) error {
		var err error
		_, household, err = callerHousehold(ctx, q)
		if err != nil {
			return err
		}

		if msg.Name != nil {
			household.Name = strings.TrimSpace(*msg.Name)
		}
		if msg.JointRatio != nil {
			household.JointRatio = *msg.JointRatio
		}
		if msg.Currency != nil {
			household.Currency = strings.ToUpper(*msg.Currency)
		}
		if msg.PayCycleType != nil {
			household.PayCycleType = models.PayCycleType(*msg.PayCycleType)
		}
		if msg.PayDay != nil {
			household.PayDay = *msg.PayDay
		}
		if err := validateHousehold(household); err != nil {
			return err
		}
		return q.UpdateHousehold(ctx, household)
	})
	if err != nil {
		s.logger.Error("UpdateHousehold failed", "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Household updated", "household_id", household.ID)
	return connect.NewResponse(&plotv1.UpdateHouseholdResponse{Household: toHousehold(household)}), nil
}

// LinkPartner links another registered user as the household's partner and
// points them at the active pay cycle.
func (s *HouseholdService) LinkPartner(ctx context.Context, req *connect.Request[plotv1.LinkPartnerRequest]) (*connect.Response[plotv1.LinkPartnerResponse], error) {
	email := strings.ToLower(strings.TrimSpace(req.Msg.Email))
	if email == "" {
		return nil, invalidArgument("partner email is required")
	}
	s.logger.Info("LinkPartner request received", "email", email)

	var household *models.Household
	err := s.store.InTx(ctx, func(q storage.Queries) error {
		var user *models.User
		var err error
		user, household, err = callerHousehold(ctx, q)
		if err != nil {
			return err
		}
		if household.PartnerUserID != "" {
			return connect.NewError(connect.CodeFailedPrecondition, errors.New("household already has a partner"))
		}

		partner, err := q.GetUserByEmail(ctx, email)
		if err != nil {
			return err
		}
		if partner.ID == user.ID {
			return invalidArgument("cannot link yourself as partner")
		}
		if _, err := householdOf(ctx, q, partner); err == nil {
			return fmt.Errorf("partner %s: %w", email, errHasHousehold)
		} else if !errors.Is(err, errNoHousehold) {
			return err
		}

		household.PartnerUserID = partner.ID
		if err := q.UpdateHousehold(ctx, household); err != nil {
			return err
		}

		active, err := q.GetPayCycleByStatus(ctx, household.ID, models.CycleActive)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		_, err = q.SetMembersCurrentPaycycle(ctx, household.ID, active.ID)
		return err
	})
	if err != nil {
		s.logger.Error("LinkPartner failed", "email", email, "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Partner linked", "household_id", household.ID, "partner_user_id", household.PartnerUserID)
	return connect.NewResponse(&plotv1.LinkPartnerResponse{Household: toHousehold(household)}), nil
}

// CreatePot creates a savings pot in the caller's household.
func (s *HouseholdService) CreatePot(ctx context.Context, req *connect.Request[plotv1.CreatePotRequest]) (*connect.Response[plotv1.CreatePotResponse], error) {
	msg := req.Msg
	pot := &models.Pot{
		Name:          strings.TrimSpace(msg.Name),
		CurrentAmount: msg.CurrentAmount,
		TargetAmount:  msg.TargetAmount,
	}
	if err := validatePot(pot); err != nil {
		return nil, err
	}

	_, household, err := callerHousehold(ctx, s.store)
	if err != nil {
		return nil, connectError(err)
	}
	pot.HouseholdID = household.ID
	if err := s.store.CreatePot(ctx, pot); err != nil {
		s.logger.Error("CreatePot failed", "household_id", household.ID, "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Pot created", "pot_id", pot.ID)
	return connect.NewResponse(&plotv1.CreatePotResponse{Pot: toPot(pot)}), nil
}

// ListPots lists the caller's savings pots.
func (s *HouseholdService) ListPots(ctx context.Context, req *connect.Request[plotv1.ListPotsRequest]) (*connect.Response[plotv1.ListPotsResponse], error) {
	_, household, err := callerHousehold(ctx, s.store)
	if err != nil {
		return nil, connectError(err)
	}
	pots, err := s.store.ListPots(ctx, household.ID)
	if err != nil {
		s.logger.Error("ListPots failed", "household_id", household.ID, "error", err)
		return nil, connectError(err)
	}

	resp := &plotv1.ListPotsResponse{Pots: make([]*plotv1.Pot, len(pots))}
	for i, p := range pots {
		resp.Pots[i] = toPot(p)
	}
	return connect.NewResponse(resp), nil
}

// CreateRepayment creates a debt balance in the caller's household.
func (s *HouseholdService) CreateRepayment(ctx context.Context, req *connect.Request[plotv1.CreateRepaymentRequest]) (*connect.Response[plotv1.CreateRepaymentResponse], error) {
	msg := req.Msg
	repayment := &models.Repayment{
		Name:            strings.TrimSpace(msg.Name),
		CurrentBalance:  msg.CurrentBalance,
		StartingBalance: msg.StartingBalance,
	}
	if err := validateRepayment(repayment); err != nil {
		return nil, err
	}

	_, household, err := callerHousehold(ctx, s.store)
	if err != nil {
		return nil, connectError(err)
	}
	repayment.HouseholdID = household.ID
	if err := s.store.CreateRepayment(ctx, repayment); err != nil {
		s.logger.Error("CreateRepayment failed", "household_id", household.ID, "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Repayment created", "repayment_id", repayment.ID)
	return connect.NewResponse(&plotv1.CreateRepaymentResponse{Repayment: toRepayment(repayment)}), nil
}

// ListRepayments lists the caller's debt balances.
func (s *HouseholdService) ListRepayments(ctx context.Context, req *connect.Request[plotv1.ListRepaymentsRequest]) (*connect.Response[plotv1.ListRepaymentsResponse], error) {
	_, household, err := callerHousehold(ctx, s.store)
	if err != nil {
		return nil, connectError(err)
	}
	repayments, err := s.store.ListRepayments(ctx, household.ID)
	if err != nil {
		s.logger.Error("ListRepayments failed", "household_id", household.ID, "error", err)
		return nil, connectError(err)
	}

	resp := &plotv1.ListRepaymentsResponse{Repayments: make([]*plotv1.Repayment, len(repayments))}
	for i, r := range repayments {
		resp.Repayments[i] = toRepayment(r)
	}
	return connect.NewResponse(resp), nil
}

func validateHousehold(h *models.Household) error {
	if h.Name == "" {
		return invalidArgument("household name is required")
	}
	if err := calculator.ValidateRatio(h.JointRatio); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	if len(h.Currency) != 3 {
		return invalidArgument("currency must be an ISO 4217 code, got %q", h.Currency)
	}
	if !h.PayCycleType.Valid() {
		return invalidArgument("unknown pay cycle type %q", h.PayCycleType)
	}
	if h.PayCycleType == models.PayCycleSpecificDate && (h.PayDay < 1 || h.PayDay > 31) {
		return invalidArgument("pay day must be between 1 and 31, got %d", h.PayDay)
	}
	return nil
}

func validatePot(p *models.Pot) error {
	if p.Name == "" {
		return invalidArgument("pot name is required")
	}
	if !nonNegative(p.CurrentAmount, p.TargetAmount) {
		return invalidArgument("pot amounts must not be negative")
	}
	return nil
}

func validateRepayment(r *models.Repayment) error {
	if r.Name == "" {
		return invalidArgument("repayment name is required")
	}
	if !nonNegative(r.CurrentBalance, r.StartingBalance) {
		return invalidArgument("repayment balances must not be negative")
	}
	return nil
}

// nonNegative reports whether every amount is zero or positive.
func nonNegative(amounts ...decimal.Decimal) bool {
	for _, a := range amounts {
		if a.IsNegative() {
			return false
		}
	}
	return true
}
