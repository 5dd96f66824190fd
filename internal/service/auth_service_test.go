package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plotv1 "github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	token := env.signUp(t, "Alex@Example.com")
	assert.NotEmpty(t, token)

	resp, err := env.auth.Login(ctx, connect.NewRequest(&plotv1.LoginRequest{
		Email:    "alex@example.com",
		Password: "correct horse battery",
	}))
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", resp.Msg.User.Email)
	assert.NotEmpty(t, resp.Msg.Token)
	assert.Greater(t, resp.Msg.ExpiresAt, time.Now().Unix())

	_, err = env.auth.Login(ctx, connect.NewRequest(&plotv1.LoginRequest{
		Email:    "alex@example.com",
		Password: "wrong password",
	}))
	assertCode(t, connect.CodeUnauthenticated, err)
}

func TestRegister_Errors(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	env.signUp(t, "sam@example.com")

	_, err := env.auth.Register(ctx, connect.NewRequest(&plotv1.RegisterRequest{
		Email:       "sam@example.com",
		DisplayName: "Sam",
		Password:    "another password",
	}))
	assertCode(t, connect.CodeAlreadyExists, err)

	_, err = env.auth.Register(ctx, connect.NewRequest(&plotv1.RegisterRequest{
		Email:       "kit@example.com",
		DisplayName: "Kit",
		Password:    "short",
	}))
	assertCode(t, connect.CodeInvalidArgument, err)

	_, err = env.auth.Register(ctx, connect.NewRequest(&plotv1.RegisterRequest{
		Email:    "kit@example.com",
		Password: "long enough password",
	}))
	assertCode(t, connect.CodeInvalidArgument, err)

	_, err = env.auth.Register(ctx, connect.NewRequest(&plotv1.RegisterRequest{
		Email:       "Kit <kit@example.com>",
		DisplayName: "Kit",
		Password:    "long enough password",
	}))
	assertCode(t, connect.CodeInvalidArgument, err)
}

func TestGetCurrentUser(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	_, err := env.auth.GetCurrentUser(ctx, connect.NewRequest(&plotv1.GetCurrentUserRequest{}))
	assertCode(t, connect.CodeUnauthenticated, err)

	token, created := env.newHousehold(t, "robin@example.com")
	resp, err := env.auth.GetCurrentUser(ctx, withToken(token, &plotv1.GetCurrentUserRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "robin@example.com", resp.Msg.User.Email)
	assert.Equal(t, created.Household.ID, resp.Msg.User.HouseholdID)
	assert.Equal(t, created.Paycycle.ID, resp.Msg.User.CurrentPaycycleID)
}
