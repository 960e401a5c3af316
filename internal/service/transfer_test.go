package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/cache"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/observability"
	"github.com/dinobank/dinoframe-bff-go/internal/service"

	"go.uber.org/zap"
)

// --- Mocks ---

type mockAccountAPI struct {
	account      *domain.Account
	err          error
	summaryCalls int
}

func (m *mockAccountAPI) GetAccountSummary(_ context.Context, _ int64) (*domain.Account, error) {
	m.summaryCalls++
	return m.account, m.err
}

type mockTransactionAPI struct {
	rows          []domain.RawTransaction
	historyErr    error
	transferErr   error
	transferCalls int
	lastTransfer  *domain.TransferRequest
}

func (m *mockTransactionAPI) GetHistory(_ context.Context, _ int64) ([]domain.RawTransaction, error) {
	return m.rows, m.historyErr
}

func (m *mockTransactionAPI) Transfer(_ context.Context, req *domain.TransferRequest) error {
	m.transferCalls++
	m.lastTransfer = req
	return m.transferErr
}

func newAccountService(accounts *mockAccountAPI, transactions *mockTransactionAPI) *service.AccountService {
	return service.NewAccountService(
		accounts,
		transactions,
		cache.New[*domain.Account](time.Minute),
		observability.NewMetrics(),
		zap.NewNop(),
	)
}

// --- Tests ---

func TestSubmit_NonPositiveAmountFailsWithoutNetworkCall(t *testing.T) {
	txAPI := &mockTransactionAPI{}
	svc := service.NewTransferService(txAPI, newAccountService(&mockAccountAPI{}, txAPI), observability.NewMetrics(), zap.NewNop())

	_, err := svc.Submit(context.Background(), 1, 10, "TR01", "TR02", 0, "")

	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if txAPI.transferCalls != 0 {
		t.Errorf("expected no network call, got %d", txAPI.transferCalls)
	}
}

func TestSubmit_BlankDescriptionDefaults(t *testing.T) {
	accountsAPI := &mockAccountAPI{account: &domain.Account{ID: 10, Balance: 900, Currency: "TRY"}}
	txAPI := &mockTransactionAPI{}
	svc := service.NewTransferService(txAPI, newAccountService(accountsAPI, txAPI), observability.NewMetrics(), zap.NewNop())

	_, err := svc.Submit(context.Background(), 1, 10, "TR01", "TR02", 100, "   ")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if txAPI.lastTransfer.Description != "Transfer" {
		t.Errorf("expected default description, got %q", txAPI.lastTransfer.Description)
	}
}

func TestSubmit_GatewayErrorSurfacesVerbatim(t *testing.T) {
	txAPI := &mockTransactionAPI{transferErr: &domain.ErrHTTP{Status: 400, Message: "Yetersiz bakiye"}}
	svc := service.NewTransferService(txAPI, newAccountService(&mockAccountAPI{}, txAPI), observability.NewMetrics(), zap.NewNop())

	_, err := svc.Submit(context.Background(), 1, 10, "TR01", "TR02", 5000, "rent")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Yetersiz bakiye" {
		t.Errorf("expected the server message verbatim, got %q", err.Error())
	}
	if txAPI.transferCalls != 1 {
		t.Errorf("expected exactly one attempt (no retry), got %d", txAPI.transferCalls)
	}
}

func TestSubmit_SuccessRefreshesOverview(t *testing.T) {
	accountsAPI := &mockAccountAPI{account: &domain.Account{ID: 10, Balance: 12_500, Currency: "TRY"}}
	txAPI := &mockTransactionAPI{}
	svc := service.NewTransferService(txAPI, newAccountService(accountsAPI, txAPI), observability.NewMetrics(), zap.NewNop())

	overview, err := svc.Submit(context.Background(), 1, 10, "TR01", "TR02", 100, "rent")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if overview == nil || overview.Account == nil {
		t.Fatal("expected refreshed overview")
	}
	if overview.Account.Balance != 12_500 {
		t.Errorf("expected refreshed balance, got %v", overview.Account.Balance)
	}
	if accountsAPI.summaryCalls == 0 {
		t.Error("expected the refresh to re-fetch the summary")
	}
	if overview.Loyalty.Current.Name != "Velociraptor" {
		t.Errorf("expected loyalty standing derived from new balance, got %s", overview.Loyalty.Current.Name)
	}
}

func TestSubmit_RefreshFailureDoesNotTurnSuccessIntoFailure(t *testing.T) {
	accountsAPI := &mockAccountAPI{err: &domain.ErrNetwork{Endpoint: "/accounts/summary/1", Err: errors.New("down")}}
	txAPI := &mockTransactionAPI{}
	svc := service.NewTransferService(txAPI, newAccountService(accountsAPI, txAPI), observability.NewMetrics(), zap.NewNop())

	overview, err := svc.Submit(context.Background(), 1, 10, "TR01", "TR02", 100, "rent")
	if err != nil {
		t.Fatalf("transfer was accepted, refresh failure must not surface: %v", err)
	}
	if overview != nil {
		t.Error("expected nil overview when refresh failed")
	}
}
