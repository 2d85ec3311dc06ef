package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	economyout "lifeos/internal/modules/economy/adapter/out"
	"lifeos/internal/modules/economy/dto"
	economyin "lifeos/internal/modules/economy/port/in"
	"lifeos/internal/modules/economy/service"
	"lifeos/internal/modules/economy/usecase"
	ledgeroutadapter "lifeos/internal/modules/ledger/adapter/out"
	ledgerdto "lifeos/internal/modules/ledger/dto"
	ledgerin "lifeos/internal/modules/ledger/port/in"
	ledgerservice "lifeos/internal/modules/ledger/service"
	ledgerusecase "lifeos/internal/modules/ledger/usecase"
	apperrors "lifeos/internal/platform/errors"
	"lifeos/internal/platform/userlock"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func newEngine(t *testing.T) (economyin.Usecase, ledgerin.Usecase, string) {
	t.Helper()
	dataDir := t.TempDir()
	store, err := ledgeroutadapter.NewSQLiteEventStore(filepath.Join(dataDir, "lifeos.db"))
	if err != nil {
		t.Fatalf("open event store: %v", err)
	}
	locks := userlock.NewKeyed()
	clk := &fakeClock{now: time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)}
	ledger := ledgerusecase.NewInteractor(ledgerservice.NewLedgerService(clk, store, locks))
	economy := usecase.NewInteractor(service.NewEconomyService(
		economyout.NewYAMLCatalogStore(dataDir),
		economyout.NewLedgerAdapter(ledger),
		locks,
	))
	return economy, ledger, dataDir
}

func earn(t *testing.T, ledger ledgerin.Usecase, userID string, minutes int) {
	t.Helper()
	end := time.Date(2026, 3, 6, 8, 0, 0, 0, time.UTC)
	_, err := ledger.AppendSession(context.Background(), ledgerdto.AppendSessionInput{
		UserID:      userID,
		StartedAt:   end.Add(-time.Duration(minutes) * time.Minute),
		EndedAt:     end,
		Theme:       "core-ability",
		TaskLabel:   "earn",
		DurationMin: minutes,
		Stage:       "Process",
		Scores:      ledgerdto.ScoresInput{Emotion: 5, Cognition: 5, Awareness: 5, Motivation: 5, Social: 5},
	})
	if err != nil {
		t.Fatalf("earn minutes: %v", err)
	}
}

func TestPurchaseRejectedWhenBalanceTooLow(t *testing.T) {
	t.Parallel()
	economy, ledger, _ := newEngine(t)
	earn(t, ledger, "u1", 50)

	_, err := economy.Purchase(context.Background(), dto.PurchaseInput{UserID: "u1", ItemName: "Soda"})
	if !errors.Is(err, apperrors.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}
	finance, err := ledger.FinanceStatus(context.Background(), "u1")
	if err != nil {
		t.Fatalf("finance: %v", err)
	}
	if finance.Balance != 50 || finance.TotalSpent != 0 {
		t.Fatalf("balance must be unchanged at 50: %+v", finance)
	}
}

func TestPurchaseDebitsExactlyPrice(t *testing.T) {
	t.Parallel()
	economy, ledger, _ := newEngine(t)
	earn(t, ledger, "u1", 100)

	out, err := economy.Purchase(context.Background(), dto.PurchaseInput{UserID: "u1", ItemName: "Soda"})
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if out.Cost != 60 || out.NewBalance != 40 || out.EventID == 0 {
		t.Fatalf("unexpected purchase: %+v", out)
	}
	finance, err := ledger.FinanceStatus(context.Background(), "u1")
	if err != nil {
		t.Fatalf("finance: %v", err)
	}
	if finance.Balance != 40 || finance.TotalSpent != 60 {
		t.Fatalf("balance must drop by exactly 60: %+v", finance)
	}
}

func TestFreeItemPurchasableAtZeroBalance(t *testing.T) {
	t.Parallel()
	economy, _, _ := newEngine(t)
	out, err := economy.Purchase(context.Background(), dto.PurchaseInput{UserID: "u1", ItemName: "Birthday Cake"})
	if err != nil {
		t.Fatalf("free purchase: %v", err)
	}
	if out.Cost != 0 || out.NewBalance != 0 {
		t.Fatalf("unexpected free purchase: %+v", out)
	}
}

func TestPurchaseUnknownItem(t *testing.T) {
	t.Parallel()
	economy, _, _ := newEngine(t)
	if _, err := economy.Purchase(context.Background(), dto.PurchaseInput{UserID: "u1", ItemName: "Yacht"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestCatalogFileOverridesBuiltins(t *testing.T) {
	t.Parallel()
	economy, _, dataDir := newEngine(t)
	override := "- name: Tea\n  price: 10\n  icon: \"\\U0001F375\"\n"
	if err := os.WriteFile(filepath.Join(dataDir, "catalog.yaml"), []byte(override), 0o644); err != nil {
		t.Fatalf("write catalog override: %v", err)
	}
	goods, err := economy.ListGoods(context.Background())
	if err != nil {
		t.Fatalf("list goods: %v", err)
	}
	if len(goods) != 1 || goods[0].Name != "Tea" || goods[0].Price != 10 {
		t.Fatalf("expected override catalog, got %+v", goods)
	}
}

func TestConcurrentPurchasesNeverOverspend(t *testing.T) {
	t.Parallel()
	economy, ledger, _ := newEngine(t)
	earn(t, ledger, "u1", 150) // room for exactly two Sodas

	var wg sync.WaitGroup
	successes := make(chan struct{}, 8)
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := economy.Purchase(context.Background(), dto.PurchaseInput{UserID: "u1", ItemName: "Soda"}); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	won := 0
	for range successes {
		won++
	}
	if won != 2 {
		t.Fatalf("expected exactly 2 successful purchases, got %d", won)
	}
	finance, err := ledger.FinanceStatus(context.Background(), "u1")
	if err != nil {
		t.Fatalf("finance: %v", err)
	}
	if finance.Balance != 30 || finance.Balance < 0 {
		t.Fatalf("balance must end at 30, got %+v", finance)
	}
}
