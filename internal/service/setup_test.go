package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/auth"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/middleware"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/storage/sqlite"
	plotv1 "github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1/plotv1connect"
)

// testEnv is a running server with one client per service.
type testEnv struct {
	auth       plotv1connect.AuthServiceClient
	households plotv1connect.HouseholdServiceClient
	seeds      plotv1connect.SeedServiceClient
	paycycles  plotv1connect.PaycycleServiceClient
}

// setupTestServer starts every service behind the production interceptors on a
// fresh database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "plot.db"))
	require.NoError(t, err, "failed to create store")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store, bcrypt.MinCost)
	requireAuth := connect.WithInterceptors(middleware.RequireAuth(jwtManager))

	mux := http.NewServeMux()
	mux.Handle(plotv1connect.NewAuthServiceHandler(
		NewAuthService(authenticator, jwtManager, store, logger),
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager)),
	))
	mux.Handle(plotv1connect.NewHouseholdServiceHandler(NewHouseholdService(store, logger), requireAuth))
	mux.Handle(plotv1connect.NewSeedServiceHandler(NewSeedService(store, logger), requireAuth))
	mux.Handle(plotv1connect.NewPaycycleServiceHandler(NewPaycycleService(store, logger), requireAuth))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{
		auth:       plotv1connect.NewAuthServiceClient(http.DefaultClient, server.URL),
		households: plotv1connect.NewHouseholdServiceClient(http.DefaultClient, server.URL),
		seeds:      plotv1connect.NewSeedServiceClient(http.DefaultClient, server.URL),
		paycycles:  plotv1connect.NewPaycycleServiceClient(http.DefaultClient, server.URL),
	}
}

// withToken wraps msg in a request authenticated as the token's user.
func withToken[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

// signUp registers a user and returns their token.
func (e *testEnv) signUp(t *testing.T, email string) string {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), connect.NewRequest(&plotv1.RegisterRequest{
		Email:       email,
		DisplayName: email,
		Password:    "correct horse battery",
	}))
	require.NoError(t, err, "Register failed")
	return resp.Msg.Token
}

// newHousehold registers a user and creates their household, paid on the 25th,
// with a first cycle of 2026-03-25 to 2026-04-24.
func (e *testEnv) newHousehold(t *testing.T, email string) (string, *plotv1.CreateHouseholdResponse) {
	t.Helper()
	token := e.signUp(t, email)
	ratio := dec("0.5")
	resp, err := e.households.CreateHousehold(context.Background(), withToken(token, &plotv1.CreateHouseholdRequest{
		Name:            "The Plotters",
		JointRatio:      &ratio,
		PayCycleType:    "specific_date",
		PayDay:          25,
		FirstCycleStart: "2026-03-25",
		IncomeMe:        dec("2500"),
		IncomePartner:   dec("2100"),
	}))
	require.NoError(t, err, "CreateHousehold failed")
	return token, resp.Msg
}

func (e *testEnv) createSeed(t *testing.T, token string, msg *plotv1.CreateSeedRequest) *plotv1.Seed {
	t.Helper()
	resp, err := e.seeds.CreateSeed(context.Background(), withToken(token, msg))
	require.NoError(t, err, "CreateSeed failed")
	return resp.Msg.Seed
}

func (e *testEnv) cycle(t *testing.T, token, id string) *plotv1.PayCycle {
	t.Helper()
	resp, err := e.paycycles.GetPaycycle(context.Background(), withToken(token, &plotv1.GetPaycycleRequest{ID: id}))
	require.NoError(t, err, "GetPaycycle failed")
	return resp.Msg.Paycycle
}

func (e *testEnv) pot(t *testing.T, token, id string) *plotv1.Pot {
	t.Helper()
	resp, err := e.households.ListPots(context.Background(), withToken(token, &plotv1.ListPotsRequest{}))
	require.NoError(t, err, "ListPots failed")
	for _, p := range resp.Msg.Pots {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("pot %s not found", id)
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, field, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func assertCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, connect.CodeOf(err), "unexpected error: %v", err)
}
