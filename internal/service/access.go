package service

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/auth"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/middleware"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/storage"
)

// caller loads the authenticated user.
func caller(ctx context.Context, q storage.Queries) (*models.User, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	user, err := q.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
	}
	return user, err
}

// householdOf resolves the household a user belongs to, either as a member or
// as the linked partner.
func householdOf(ctx context.Context, q storage.Queries, user *models.User) (*models.Household, error) {
	if user.HouseholdID != "" {
		return q.GetHousehold(ctx, user.HouseholdID)
	}
	h, err := q.GetHouseholdByPartner(ctx, user.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errNoHousehold
	}
	return h, err
}

// callerHousehold loads the authenticated user and their household.
func callerHousehold(ctx context.Context, q storage.Queries) (*models.User, *models.Household, error) {
	user, err := caller(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	h, err := householdOf(ctx, q, user)
	if err != nil {
		return nil, nil, err
	}
	return user, h, nil
}

// authorize checks that a row owned by ownerID belongs to household h.
func authorize(h *models.Household, ownerID string) error {
	if ownerID != h.ID {
		return errNotMember
	}
	return nil
}

// householdSeed loads a seed and checks it belongs to the caller's household.
func householdSeed(ctx context.Context, q storage.Queries, h *models.Household, seedID string) (*models.Seed, error) {
	seed, err := q.GetSeed(ctx, seedID)
	if err != nil {
		return nil, err
	}
	if err := authorize(h, seed.HouseholdID); err != nil {
		return nil, err
	}
	return seed, nil
}

// householdCycle loads a pay cycle and checks it belongs to the caller's household.
func householdCycle(ctx context.Context, q storage.Queries, h *models.Household, cycleID string) (*models.PayCycle, error) {
	if cycleID == "" {
		return nil, invalidArgument("pay cycle id is required")
	}
	cycle, err := q.GetPayCycle(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	if err := authorize(h, cycle.HouseholdID); err != nil {
		return nil, fmt.Errorf("pay cycle %s: %w", cycleID, err)
	}
	return cycle, nil
}
