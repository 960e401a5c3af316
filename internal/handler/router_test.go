package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/handler"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/cache"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/observability"
	"github.com/dinobank/dinoframe-bff-go/internal/service"

	"go.uber.org/zap"
)

type mockLedger struct {
	loginResp *domain.LoginResponse
	loginErr  error
	account   *domain.Account
	rows      []domain.RawTransaction
	applyResp *domain.CreditApplyResponse
	credits   []domain.RawCreditApplication
}

func (m *mockLedger) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	return m.loginResp, m.loginErr
}

func (m *mockLedger) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.RegisterResponse, error) {
	return &domain.RegisterResponse{Message: "Registration successful"}, nil
}

func (m *mockLedger) GetAccountSummary(ctx context.Context, customerID int64) (*domain.Account, error) {
	return m.account, nil
}

func (m *mockLedger) GetHistory(ctx context.Context, accountID int64) ([]domain.RawTransaction, error) {
	return m.rows, nil
}

func (m *mockLedger) Transfer(ctx context.Context, req *domain.TransferRequest) error {
	return nil
}

func (m *mockLedger) Apply(ctx context.Context, req *domain.CreditApplyRequest) (*domain.CreditApplyResponse, error) {
	return m.applyResp, nil
}

func (m *mockLedger) History(ctx context.Context, customerID int64) ([]domain.RawCreditApplication, error) {
	return m.credits, nil
}

func (m *mockLedger) GetSnapshot(ctx context.Context) (*domain.DatabaseSnapshot, error) {
	return &domain.DatabaseSnapshot{}, nil
}

type memSessions struct {
	session *domain.Session
	token   string
}

func (s *memSessions) Get() *domain.Session          { return s.session }
func (s *memSessions) Set(sess *domain.Session) error { s.session = sess; return nil }
func (s *memSessions) Token() string                 { return s.token }
func (s *memSessions) SetToken(token string) error   { s.token = token; return nil }
func (s *memSessions) Clear() error                  { s.session = nil; s.token = ""; return nil }

func newTestRouter(ledger *mockLedger, sessions *memSessions) http.Handler {
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	summaryCache := cache.New[*domain.Account](time.Minute)

	accountSvc := service.NewAccountService(ledger, ledger, summaryCache, metrics, logger)
	svcs := handler.Services{
		Auth:     service.NewAuthService(ledger, sessions, logger),
		Accounts: accountSvc,
		Transfer: service.NewTransferService(ledger, accountSvc, metrics, logger),
		Credit:   service.NewCreditService(ledger, metrics, logger),
		Admin:    service.NewAdminService(ledger, logger),
		Sessions: sessions,
		Metrics:  metrics,
	}
	return handler.NewRouter(svcs, "http://localhost:5173", logger)
}

func defaultLedger() *mockLedger {
	return &mockLedger{
		loginResp: &domain.LoginResponse{ID: 7, Name: "Rex", Email: "rex@dinobank.test"},
		account:   &domain.Account{ID: 42, AccountNumber: "DINO-42", Balance: 12500, Currency: "TL"},
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(defaultLedger(), &memSessions{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(defaultLedger(), &memSessions{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestOverviewRequiresSession(t *testing.T) {
	router := newTestRouter(defaultLedger(), &memSessions{})

	req := httptest.NewRequest(http.MethodGet, "/v1/overview", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestLoginStoresSession(t *testing.T) {
	sessions := &memSessions{}
	router := newTestRouter(defaultLedger(), sessions)

	body := bytes.NewBufferString(`{"email":"rex@dinobank.test","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if sessions.session == nil || sessions.session.UserID != 7 {
		t.Errorf("expected session for customer 7, got %+v", sessions.session)
	}
}

func TestOverviewWithSession(t *testing.T) {
	sessions := &memSessions{session: &domain.Session{UserID: 7, DisplayName: "Rex"}}
	router := newTestRouter(defaultLedger(), sessions)

	req := httptest.NewRequest(http.MethodGet, "/v1/overview", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Account *domain.Account `json:"account"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Account == nil || resp.Account.AccountNumber != "DINO-42" {
		t.Errorf("unexpected account in overview: %+v", resp.Account)
	}
}

func TestTransferRejectsZeroAmount(t *testing.T) {
	sessions := &memSessions{session: &domain.Session{UserID: 7}}
	router := newTestRouter(defaultLedger(), sessions)

	body := bytes.NewBufferString(`{"toAccountNumber":"DINO-99","amount":0}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/transfers", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreditApplyReturnsDecision(t *testing.T) {
	ledger := defaultLedger()
	ledger.applyResp = &domain.CreditApplyResponse{Status: "REJECTED", RejectionReason: "insufficient income"}
	sessions := &memSessions{session: &domain.Session{UserID: 7}}
	router := newTestRouter(ledger, sessions)

	body := bytes.NewBufferString(`{"requestedAmount":"50000","installmentCount":"12","purpose":"nest upgrade"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/credits/apply", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Decision *domain.CreditDecision `json:"decision"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Decision == nil || resp.Decision.Status != domain.CreditRejected {
		t.Errorf("unexpected decision: %+v", resp.Decision)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	sessions := &memSessions{session: &domain.Session{UserID: 7}, token: "tok"}
	router := newTestRouter(defaultLedger(), sessions)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if sessions.session != nil || sessions.token != "" {
		t.Errorf("expected session and token cleared, got %+v %q", sessions.session, sessions.token)
	}
}
