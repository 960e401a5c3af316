package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/history"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/observability"
	"github.com/dinobank/dinoframe-bff-go/internal/loyalty"
	"github.com/dinobank/dinoframe-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var accountTracer = otel.Tracer("service/accounts")

// Overview is everything the dashboard renders for one customer: the
// account snapshot, the normalized transaction history, and the loyalty
// standing derived from the balance.
type Overview struct {
	Account      *domain.Account      `json:"account"`
	Transactions []domain.Transaction `json:"transactions"`
	Loyalty      loyalty.Standing     `json:"loyalty"`
}

// AccountService assembles account overviews. Refreshes for the same
// customer are single-flighted so concurrent triggers (a transfer and a
// page reload racing) collapse into one fetch and all callers see the
// same post-operation state.
type AccountService struct {
	accounts     port.AccountAPI
	transactions port.TransactionAPI
	cache        port.Cache[*domain.Account]
	metrics      *observability.Metrics
	logger       *zap.Logger
	group        singleflight.Group
}

// NewAccountService creates the account overview workflow.
func NewAccountService(accounts port.AccountAPI, transactions port.TransactionAPI, cache port.Cache[*domain.Account], metrics *observability.Metrics, logger *zap.Logger) *AccountService {
	return &AccountService{
		accounts:     accounts,
		transactions: transactions,
		cache:        cache,
		metrics:      metrics,
		logger:       logger,
	}
}

// Summary returns the account snapshot, served from the short-TTL cache
// when possible.
func (s *AccountService) Summary(ctx context.Context, customerID int64) (*domain.Account, error) {
	ctx, span := accountTracer.Start(ctx, "AccountService.Summary")
	defer span.End()
	span.SetAttributes(attribute.Int64("customer.id", customerID))

	key := summaryKey(customerID)
	if acc, ok := s.cache.Get(key); ok {
		s.metrics.IncrCacheHit("summary")
		return acc, nil
	}
	s.metrics.IncrCacheMiss("summary")

	acc, err := s.accounts.GetAccountSummary(ctx, customerID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, acc)
	return acc, nil
}

// Overview loads the snapshot and the transaction history for the
// customer. A history fetch failure logs and yields an empty list rather
// than blocking the page; a summary failure propagates.
func (s *AccountService) Overview(ctx context.Context, customerID int64) (*Overview, error) {
	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("overview", time.Since(start)) }()

	ctx, span := accountTracer.Start(ctx, "AccountService.Overview")
	defer span.End()
	span.SetAttributes(attribute.Int64("customer.id", customerID))

	v, err, _ := s.group.Do(overviewKey(customerID), func() (any, error) {
		acc, err := s.Summary(ctx, customerID)
		if err != nil {
			return nil, err
		}
		return s.assemble(ctx, acc), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Overview), nil
}

// Refresh re-fetches the snapshot and the history, bypassing the cache.
// accountID is the known account so both fetches run concurrently.
// Concurrent refreshes for one customer collapse into a single flight.
func (s *AccountService) Refresh(ctx context.Context, customerID, accountID int64) (*Overview, error) {
	ctx, span := accountTracer.Start(ctx, "AccountService.Refresh")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("customer.id", customerID),
		attribute.Int64("account.id", accountID),
	)

	v, err, _ := s.group.Do(overviewKey(customerID), func() (any, error) {
		s.cache.Delete(summaryKey(customerID))

		var (
			acc *domain.Account
			raw []domain.RawTransaction
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			acc, err = s.accounts.GetAccountSummary(gctx, customerID)
			return err
		})
		g.Go(func() error {
			rows, err := s.transactions.GetHistory(gctx, accountID)
			if err != nil {
				// History failures degrade to prior/empty state (logged),
				// they never fail the refresh.
				s.logger.Warn("accounts: history refresh failed",
					zap.Int64("account_id", accountID),
					zap.Error(err),
				)
				return nil
			}
			raw = rows
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		s.cache.Set(summaryKey(customerID), acc)
		return &Overview{
			Account:      acc,
			Transactions: history.Normalize(raw),
			Loyalty:      loyalty.StandingFor(acc.Balance, loyalty.DefaultTiers),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Overview), nil
}

// assemble attaches history and loyalty standing to a fetched snapshot.
func (s *AccountService) assemble(ctx context.Context, acc *domain.Account) *Overview {
	raw, err := s.transactions.GetHistory(ctx, acc.ID)
	if err != nil {
		s.logger.Warn("accounts: history fetch failed, rendering empty list",
			zap.Int64("account_id", acc.ID),
			zap.Error(err),
		)
		raw = nil
	}

	return &Overview{
		Account:      acc,
		Transactions: history.Normalize(raw),
		Loyalty:      loyalty.StandingFor(acc.Balance, loyalty.DefaultTiers),
	}
}

func summaryKey(customerID int64) string {
	return fmt.Sprintf("summary:%d", customerID)
}

func overviewKey(customerID int64) string {
	return fmt.Sprintf("overview:%d", customerID)
}
