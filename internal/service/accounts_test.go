package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/cache"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/observability"
	"github.com/dinobank/dinoframe-bff-go/internal/service"

	"go.uber.org/zap"
)

// gatedAccountAPI blocks the first summary fetch until release is closed,
// so a test can hold a refresh in flight while more callers arrive.
type gatedAccountAPI struct {
	account *domain.Account
	started chan struct{}
	release chan struct{}

	mu    sync.Mutex
	calls int
}

func (m *gatedAccountAPI) GetAccountSummary(_ context.Context, _ int64) (*domain.Account, error) {
	m.mu.Lock()
	m.calls++
	first := m.calls == 1
	m.mu.Unlock()

	if first {
		close(m.started)
	}
	<-m.release
	return m.account, nil
}

func TestSummary_ServedFromCacheOnSecondCall(t *testing.T) {
	accountsAPI := &mockAccountAPI{account: &domain.Account{ID: 10, Balance: 5_000, Currency: "TRY"}}
	svc := newAccountService(accountsAPI, &mockTransactionAPI{})

	if _, err := svc.Summary(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Summary(context.Background(), 1); err != nil {
		t.Fatal(err)
	}

	if accountsAPI.summaryCalls != 1 {
		t.Errorf("expected one upstream fetch, got %d", accountsAPI.summaryCalls)
	}
}

func TestOverview_HistoryFailureRendersEmptyList(t *testing.T) {
	accountsAPI := &mockAccountAPI{account: &domain.Account{ID: 10, Balance: 5_000, Currency: "TRY"}}
	txAPI := &mockTransactionAPI{historyErr: &domain.ErrNetwork{Endpoint: "/transactions/history/10", Err: errors.New("down")}}
	svc := newAccountService(accountsAPI, txAPI)

	overview, err := svc.Overview(context.Background(), 1)
	if err != nil {
		t.Fatalf("history failure must not block the page: %v", err)
	}
	if len(overview.Transactions) != 0 {
		t.Errorf("expected empty history, got %d rows", len(overview.Transactions))
	}
	if overview.Account.Balance != 5_000 {
		t.Errorf("expected the summary to still render, got %+v", overview.Account)
	}
}

func TestOverview_SummaryFailurePropagates(t *testing.T) {
	accountsAPI := &mockAccountAPI{err: &domain.ErrHTTP{Status: 404, Message: "account not found"}}
	svc := newAccountService(accountsAPI, &mockTransactionAPI{})

	_, err := svc.Overview(context.Background(), 1)
	if err == nil {
		t.Fatal("expected summary failure to propagate")
	}
}

func TestOverview_DerivesLoyaltyStanding(t *testing.T) {
	accountsAPI := &mockAccountAPI{account: &domain.Account{ID: 10, Balance: 60_000, Currency: "TRY"}}
	svc := newAccountService(accountsAPI, &mockTransactionAPI{})

	overview, err := svc.Overview(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if overview.Loyalty.Current.Name != "Triceratops" {
		t.Errorf("expected Triceratops for 60000, got %s", overview.Loyalty.Current.Name)
	}
	if overview.Loyalty.Next == nil || overview.Loyalty.Next.Name != "T-Rex King" {
		t.Errorf("expected next tier T-Rex King, got %+v", overview.Loyalty.Next)
	}
}

func TestRefresh_BypassesCache(t *testing.T) {
	accountsAPI := &mockAccountAPI{account: &domain.Account{ID: 10, Balance: 5_000, Currency: "TRY"}}
	txAPI := &mockTransactionAPI{}
	svc := newAccountService(accountsAPI, txAPI)

	if _, err := svc.Summary(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Refresh(context.Background(), 1, 10); err != nil {
		t.Fatal(err)
	}

	if accountsAPI.summaryCalls != 2 {
		t.Errorf("refresh must re-fetch the summary, got %d upstream calls", accountsAPI.summaryCalls)
	}
}

func TestRefresh_ConcurrentCallsCollapse(t *testing.T) {
	api := &gatedAccountAPI{
		account: &domain.Account{ID: 10, Balance: 5_000, Currency: "TRY"},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := service.NewAccountService(
		api,
		&mockTransactionAPI{},
		cache.New[*domain.Account](time.Minute),
		observability.NewMetrics(),
		zap.NewNop(),
	)

	overviews := make(chan *service.Overview, 2)
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			overview, err := svc.Refresh(context.Background(), 1, 10)
			errs <- err
			overviews <- overview
		}()
	}

	<-api.started
	// Give the second caller time to join the in-flight refresh, then let
	// the held summary fetch complete.
	time.Sleep(20 * time.Millisecond)
	close(api.release)

	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Fatal(err)
		}
	}
	first, second := <-overviews, <-overviews
	if first != second {
		t.Error("expected both callers to observe the same refresh result")
	}

	api.mu.Lock()
	defer api.mu.Unlock()
	if api.calls != 1 {
		t.Errorf("expected concurrent refreshes to collapse into one upstream fetch, got %d", api.calls)
	}
}
