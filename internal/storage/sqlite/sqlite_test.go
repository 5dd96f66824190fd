package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/goleak"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateFormat, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

// seedHousehold creates a household with an active pay cycle.
func seedHousehold(t *testing.T, store *SQLiteStore) (*models.Household, *models.PayCycle) {
	t.Helper()
	ctx := context.Background()

	h := &models.Household{
		Name:         "Test Household",
		JointRatio:   dec("0.5"),
		PayCycleType: models.PayCycleSpecificDate,
		PayDay:       25,
	}
	if err := store.CreateHousehold(ctx, h); err != nil {
		t.Fatalf("CreateHousehold failed: %v", err)
	}

	c := &models.PayCycle{
		HouseholdID: h.ID,
		Name:        "25 Jan 2026",
		Status:      models.CycleActive,
		StartDate:   mustDate(t, "2026-01-25"),
		EndDate:     mustDate(t, "2026-02-24"),
		IncomeMe:    dec("2500"),
	}
	if err := store.CreatePayCycle(ctx, c); err != nil {
		t.Fatalf("CreatePayCycle failed: %v", err)
	}
	return h, c
}

func TestNew_CloseLeaksNothing(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store, err := New(filepath.Join(t.TempDir(), "leak.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if _, err := store.ListPots(context.Background(), "none"); err != nil {
		t.Fatalf("ListPots failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestSQLiteStore_Households(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateHousehold assigns ID and defaults", func(t *testing.T) {
		h, _ := seedHousehold(t, store)
		if h.ID == "" {
			t.Error("Expected household ID to be generated")
		}
		if h.Currency != models.DefaultCurrency {
			t.Errorf("Currency = %q, want %q", h.Currency, models.DefaultCurrency)
		}

		got, err := store.GetHousehold(ctx, h.ID)
		if err != nil {
			t.Fatalf("GetHousehold failed: %v", err)
		}
		if !got.JointRatio.Equal(dec("0.5")) {
			t.Errorf("JointRatio = %s, want 0.5", got.JointRatio)
		}
		if got.PayCycleType != models.PayCycleSpecificDate || got.PayDay != 25 {
			t.Errorf("pay rule = %s/%d", got.PayCycleType, got.PayDay)
		}
	})

	t.Run("GetHousehold returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetHousehold(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("partner lookup and member propagation", func(t *testing.T) {
		h, c := seedHousehold(t, store)

		owner := models.NewUser("owner@example.com", "Owner", "hash")
		partner := models.NewUser("partner@example.com", "Partner", "hash")
		outsider := models.NewUser("outsider@example.com", "Outsider", "hash")
		for _, u := range []*models.User{owner, partner, outsider} {
			if err := store.CreateUser(ctx, u); err != nil {
				t.Fatalf("CreateUser failed: %v", err)
			}
		}
		if err := store.SetUserHousehold(ctx, owner.ID, h.ID); err != nil {
			t.Fatalf("SetUserHousehold failed: %v", err)
		}
		h.PartnerUserID = partner.ID
		if err := store.UpdateHousehold(ctx, h); err != nil {
			t.Fatalf("UpdateHousehold failed: %v", err)
		}

		linked, err := store.GetHouseholdByPartner(ctx, partner.ID)
		if err != nil {
			t.Fatalf("GetHouseholdByPartner failed: %v", err)
		}
		if linked.ID != h.ID {
			t.Errorf("partner household = %s, want %s", linked.ID, h.ID)
		}

		n, err := store.SetMembersCurrentPaycycle(ctx, h.ID, c.ID)
		if err != nil {
			t.Fatalf("SetMembersCurrentPaycycle failed: %v", err)
		}
		if n != 2 {
			t.Errorf("updated %d members, want 2", n)
		}

		members, err := store.ListHouseholdMembers(ctx, h.ID)
		if err != nil {
			t.Fatalf("ListHouseholdMembers failed: %v", err)
		}
		if len(members) != 2 {
			t.Fatalf("members = %d, want 2", len(members))
		}
		for _, m := range members {
			if m.CurrentPaycycleID != c.ID {
				t.Errorf("%s current pay cycle = %q, want %q", m.Email, m.CurrentPaycycleID, c.ID)
			}
		}

		other, err := store.GetUserByID(ctx, outsider.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if other.CurrentPaycycleID != "" {
			t.Errorf("outsider was updated to %q", other.CurrentPaycycleID)
		}
	})
}

func TestSQLiteStore_PayCycles(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("totals round-trip through every column", func(t *testing.T) {
		_, c := seedHousehold(t, store)

		totals := models.NewAllocationTotals()
		for i, b := range models.Buckets() {
			totals.Alloc[b] = decimal.NewFromInt(int64(i + 1)).Add(dec("0.01"))
			totals.Rem[b] = decimal.NewFromInt(int64(100 + i))
		}
		if err := store.SetPayCycleTotals(ctx, c.ID, totals); err != nil {
			t.Fatalf("SetPayCycleTotals failed: %v", err)
		}

		got, err := store.GetPayCycle(ctx, c.ID)
		if err != nil {
			t.Fatalf("GetPayCycle failed: %v", err)
		}
		for _, b := range models.Buckets() {
			if !got.Totals.Alloc.Get(b).Equal(totals.Alloc.Get(b)) {
				t.Errorf("%s = %s, want %s", b.Column("alloc"), got.Totals.Alloc.Get(b), totals.Alloc.Get(b))
			}
			if !got.Totals.Rem.Get(b).Equal(totals.Rem.Get(b)) {
				t.Errorf("%s = %s, want %s", b.Column("rem"), got.Totals.Rem.Get(b), totals.Rem.Get(b))
			}
		}
		if got.StartDate.Format(models.DateFormat) != "2026-01-25" {
			t.Errorf("StartDate = %s", got.StartDate)
		}
		if !got.IncomeMe.Equal(dec("2500")) {
			t.Errorf("IncomeMe = %s", got.IncomeMe)
		}
	})

	t.Run("second active cycle violates the unique index", func(t *testing.T) {
		h, _ := seedHousehold(t, store)

		dup := &models.PayCycle{
			HouseholdID: h.ID,
			Name:        "dup",
			Status:      models.CycleActive,
			StartDate:   mustDate(t, "2026-02-25"),
			EndDate:     mustDate(t, "2026-03-24"),
		}
		if err := store.CreatePayCycle(ctx, dup); err == nil {
			t.Error("Expected error for second active pay cycle")
		}
	})

	t.Run("status lookup and ritual timestamp", func(t *testing.T) {
		h, c := seedHousehold(t, store)

		active, err := store.GetPayCycleByStatus(ctx, h.ID, models.CycleActive)
		if err != nil {
			t.Fatalf("GetPayCycleByStatus failed: %v", err)
		}
		if active.ID != c.ID {
			t.Errorf("active = %s, want %s", active.ID, c.ID)
		}

		if _, err := store.GetPayCycleByStatus(ctx, h.ID, models.CycleDraft); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for draft, got %v", err)
		}

		if err := store.SetRitualClosedAt(ctx, c.ID, 1700000000); err != nil {
			t.Fatalf("SetRitualClosedAt failed: %v", err)
		}
		got, _ := store.GetPayCycle(ctx, c.ID)
		if got.RitualClosedAt != 1700000000 {
			t.Errorf("RitualClosedAt = %d", got.RitualClosedAt)
		}

		if err := store.SetRitualClosedAt(ctx, c.ID, 0); err != nil {
			t.Fatalf("SetRitualClosedAt(0) failed: %v", err)
		}
		got, _ = store.GetPayCycle(ctx, c.ID)
		if got.RitualClosed() {
			t.Error("Expected ritual to be reopened")
		}
	})
}

func TestSQLiteStore_Seeds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	h, c := seedHousehold(t, store)

	pot := &models.Pot{HouseholdID: h.ID, Name: "Holiday", TargetAmount: dec("1500")}
	if err := store.CreatePot(ctx, pot); err != nil {
		t.Fatalf("CreatePot failed: %v", err)
	}

	seed := &models.Seed{
		HouseholdID:   h.ID,
		PaycycleID:    c.ID,
		Name:          "Holiday fund",
		Amount:        dec("100.10"),
		Type:          models.SeedSavings,
		PaymentSource: models.SourceJoint,
		SplitRatio:    decimal.NewNullDecimal(dec("0.6")),
		AmountMe:      dec("60.06"),
		AmountPartner: dec("40.04"),
		IsRecurring:   true,
		LinkedPotID:   pot.ID,
	}

	t.Run("CreateSeed and GetSeed", func(t *testing.T) {
		if err := store.CreateSeed(ctx, seed); err != nil {
			t.Fatalf("CreateSeed failed: %v", err)
		}
		if seed.ID == "" {
			t.Fatal("Expected seed ID to be generated")
		}

		got, err := store.GetSeed(ctx, seed.ID)
		if err != nil {
			t.Fatalf("GetSeed failed: %v", err)
		}
		if !got.Amount.Equal(dec("100.10")) || !got.AmountMe.Equal(dec("60.06")) || !got.AmountPartner.Equal(dec("40.04")) {
			t.Errorf("amounts = %s/%s/%s", got.Amount, got.AmountMe, got.AmountPartner)
		}
		if !got.SplitRatio.Valid || !got.SplitRatio.Decimal.Equal(dec("0.6")) {
			t.Errorf("SplitRatio = %+v", got.SplitRatio)
		}
		if got.Type != models.SeedSavings || got.PaymentSource != models.SourceJoint {
			t.Errorf("type/source = %s/%s", got.Type, got.PaymentSource)
		}
		if !got.IsRecurring || got.IsPaid || got.LinkedPotID != pot.ID || got.LinkedRepaymentID != "" {
			t.Errorf("flags/links = %+v", got)
		}
	})

	t.Run("SetSeedPaidFlags", func(t *testing.T) {
		if err := store.SetSeedPaidFlags(ctx, seed.ID, false, true, false); err != nil {
			t.Fatalf("SetSeedPaidFlags failed: %v", err)
		}
		got, _ := store.GetSeed(ctx, seed.ID)
		if got.IsPaid || !got.IsPaidMe || got.IsPaidPartner {
			t.Errorf("flags = %v/%v/%v", got.IsPaid, got.IsPaidMe, got.IsPaidPartner)
		}
	})

	t.Run("UpdateSeed clears split ratio", func(t *testing.T) {
		seed.SplitRatio = decimal.NullDecimal{}
		seed.Name = "Holiday"
		if err := store.UpdateSeed(ctx, seed); err != nil {
			t.Fatalf("UpdateSeed failed: %v", err)
		}
		got, _ := store.GetSeed(ctx, seed.ID)
		if got.SplitRatio.Valid {
			t.Errorf("Expected NULL split ratio, got %s", got.SplitRatio.Decimal)
		}
		if got.Name != "Holiday" {
			t.Errorf("Name = %q", got.Name)
		}
	})

	t.Run("ListSeedsByPaycycle", func(t *testing.T) {
		second := &models.Seed{
			HouseholdID:   h.ID,
			PaycycleID:    c.ID,
			Name:          "Rent",
			Amount:        dec("900"),
			Type:          models.SeedNeed,
			PaymentSource: models.SourceMe,
			AmountMe:      dec("900"),
			AmountPartner: dec("0"),
		}
		if err := store.CreateSeed(ctx, second); err != nil {
			t.Fatalf("CreateSeed failed: %v", err)
		}

		seeds, err := store.ListSeedsByPaycycle(ctx, c.ID)
		if err != nil {
			t.Fatalf("ListSeedsByPaycycle failed: %v", err)
		}
		if len(seeds) != 2 {
			t.Fatalf("seeds = %d, want 2", len(seeds))
		}
		if seeds[0].ID != seed.ID || seeds[1].ID != second.ID {
			t.Errorf("unexpected order: %s, %s", seeds[0].Name, seeds[1].Name)
		}
	})

	t.Run("DeleteSeed", func(t *testing.T) {
		if err := store.DeleteSeed(ctx, seed.ID); err != nil {
			t.Fatalf("DeleteSeed failed: %v", err)
		}
		if _, err := store.GetSeed(ctx, seed.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := store.DeleteSeed(ctx, seed.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
		}
	})
}

func TestSQLiteStore_InTx(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	h, _ := seedHousehold(t, store)

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		var potID string
		err := store.InTx(ctx, func(q storage.Queries) error {
			pot := &models.Pot{HouseholdID: h.ID, Name: "Rolled back"}
			if err := q.CreatePot(ctx, pot); err != nil {
				return err
			}
			potID = pot.ID
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("InTx error = %v, want boom", err)
		}
		if _, err := store.GetPot(ctx, potID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected pot to be rolled back, got %v", err)
		}
	})

	t.Run("commits on success", func(t *testing.T) {
		r := &models.Repayment{HouseholdID: h.ID, Name: "Car loan", CurrentBalance: dec("4000"), StartingBalance: dec("6000")}
		err := store.InTx(ctx, func(q storage.Queries) error {
			return q.CreateRepayment(ctx, r)
		})
		if err != nil {
			t.Fatalf("InTx failed: %v", err)
		}

		list, err := store.ListRepayments(ctx, h.ID)
		if err != nil {
			t.Fatalf("ListRepayments failed: %v", err)
		}
		if len(list) != 1 || !list[0].CurrentBalance.Equal(dec("4000")) {
			t.Errorf("repayments = %+v", list)
		}
	})
}
