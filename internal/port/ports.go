// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the workflow layer
// from the concrete ledger client and session persistence.
package port

import (
	"context"
	"encoding/json"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
)

// Gateway executes one remote call with uniform error surfacing. A nil
// payload with a nil error means "success, no body" (204 or unparsable 2xx).
type Gateway interface {
	Execute(ctx context.Context, method, endpoint string, body any, headers map[string]string) (json.RawMessage, error)
}

// SessionStore holds the single authenticated identity across process
// restarts. Get returns nil for a missing or corrupt record; callers treat
// nil as unauthenticated. Clear removes the session and the bearer token
// together.
type SessionStore interface {
	Get() *domain.Session
	Set(s *domain.Session) error
	Token() string
	SetToken(token string) error
	Clear() error
}

// AuthAPI covers the ledger's authentication endpoints.
type AuthAPI interface {
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.RegisterResponse, error)
}

// AccountAPI retrieves account snapshots.
type AccountAPI interface {
	GetAccountSummary(ctx context.Context, customerID int64) (*domain.Account, error)
}

// TransactionAPI retrieves raw history and submits transfers.
type TransactionAPI interface {
	GetHistory(ctx context.Context, accountID int64) ([]domain.RawTransaction, error)
	Transfer(ctx context.Context, req *domain.TransferRequest) error
}

// CreditAPI submits credit applications and lists past ones.
type CreditAPI interface {
	Apply(ctx context.Context, req *domain.CreditApplyRequest) (*domain.CreditApplyResponse, error)
	History(ctx context.Context, customerID int64) ([]domain.RawCreditApplication, error)
}

// AdminAPI exposes the ledger's debug snapshot.
type AdminAPI interface {
	GetSnapshot(ctx context.Context) (*domain.DatabaseSnapshot, error)
}

// LedgerAPI is the full remote contract, implemented by the ledger client.
type LedgerAPI interface {
	AuthAPI
	AccountAPI
	TransactionAPI
	CreditAPI
	AdminAPI
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
