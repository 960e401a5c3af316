package service

import (
	"context"
	"strings"
	"time"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/observability"
	"github.com/dinobank/dinoframe-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var transferTracer = otel.Tracer("service/transfer")

// defaultTransferDescription stands in when the caller leaves it blank.
const defaultTransferDescription = "Transfer"

// TransferService submits peer-to-peer transfers. Each submission resolves
// to exactly one outcome for the caller: success with the refreshed
// overview, or an error — never both, never neither.
type TransferService struct {
	api      port.TransactionAPI
	accounts *AccountService
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewTransferService creates the transfer workflow.
func NewTransferService(api port.TransactionAPI, accounts *AccountService, metrics *observability.Metrics, logger *zap.Logger) *TransferService {
	return &TransferService{api: api, accounts: accounts, metrics: metrics, logger: logger}
}

// Submit validates and sends a transfer, then refreshes the sender's
// overview so the new balance and both ledger entries are visible.
//
// A non-positive amount fails locally before any network call. A gateway
// failure surfaces verbatim and is never retried here. A refresh failure
// after an accepted transfer does not turn success into failure; the
// overview comes back nil and the caller re-fetches on its own schedule.
func (s *TransferService) Submit(ctx context.Context, customerID, accountID int64, from, to string, amount float64, description string) (*Overview, error) {
	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("transfer", time.Since(start)) }()

	ctx, span := transferTracer.Start(ctx, "TransferService.Submit")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("customer.id", customerID),
		attribute.Float64("transfer.amount", amount),
	)

	if amount <= 0 {
		return nil, &domain.ErrValidation{Field: "amount", Message: "amount must be positive"}
	}
	if strings.TrimSpace(to) == "" {
		return nil, &domain.ErrValidation{Field: "toAccountNumber", Message: "recipient account is required"}
	}
	if strings.TrimSpace(description) == "" {
		description = defaultTransferDescription
	}

	err := s.api.Transfer(ctx, &domain.TransferRequest{
		FromAccountNumber: from,
		ToAccountNumber:   to,
		Amount:            amount,
		Description:       description,
	})
	if err != nil {
		s.logger.Warn("transfer: rejected",
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err),
		)
		return nil, err
	}

	overview, err := s.accounts.Refresh(ctx, customerID, accountID)
	if err != nil {
		s.logger.Warn("transfer: accepted but refresh failed",
			zap.Int64("customer_id", customerID),
			zap.Error(err),
		)
		return nil, nil
	}
	return overview, nil
}
