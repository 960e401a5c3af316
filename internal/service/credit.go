package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/observability"
	"github.com/dinobank/dinoframe-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var creditTracer = otel.Tracer("service/credit")

// CreditService submits credit applications and classifies the outcome.
// Each application is terminal on the first response: SUBMITTING resolves
// to APPROVED, REJECTED, PENDING, or ERROR, and never transitions again.
type CreditService struct {
	api     port.CreditAPI
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewCreditService creates the credit application workflow.
func NewCreditService(api port.CreditAPI, metrics *observability.Metrics, logger *zap.Logger) *CreditService {
	return &CreditService{api: api, metrics: metrics, logger: logger}
}

// Apply coerces and validates the form inputs, submits the application,
// classifies the ledger's reply, and refreshes the history so the new
// application shows up with its resolved status. Gateway failures become
// an ERROR decision carrying the gateway's message; only local validation
// failures return an error.
//
// The customer id is the locally stored identity, not a server-verified
// credential — a trust boundary inherited from the wire contract.
func (s *CreditService) Apply(ctx context.Context, customerID int64, requestedAmount, installmentCount, purpose string) (*domain.CreditDecision, []domain.CreditApplication, error) {
	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("credit_apply", time.Since(start)) }()

	ctx, span := creditTracer.Start(ctx, "CreditService.Apply")
	defer span.End()
	span.SetAttributes(attribute.Int64("customer.id", customerID))

	amount, err := strconv.ParseFloat(strings.TrimSpace(requestedAmount), 64)
	if err != nil || amount <= 0 {
		return nil, nil, &domain.ErrValidation{Field: "requestedAmount", Message: "must be a positive number"}
	}
	installments, err := strconv.Atoi(strings.TrimSpace(installmentCount))
	if err != nil {
		return nil, nil, &domain.ErrValidation{Field: "installmentCount", Message: "must be an integer"}
	}

	decision := s.classify(s.api.Apply(ctx, &domain.CreditApplyRequest{
		CustomerID:       customerID,
		RequestedAmount:  amount,
		InstallmentCount: installments,
		Purpose:          purpose,
	}))
	span.SetAttributes(attribute.String("credit.status", decision.Status))

	s.logger.Info("credit: application classified",
		zap.Int64("customer_id", customerID),
		zap.String("status", decision.Status),
	)

	// Terminal classification always refreshes the history, ERROR included.
	apps, err := s.History(ctx, customerID)
	if err != nil {
		s.logger.Warn("credit: history refresh failed after application",
			zap.Int64("customer_id", customerID),
			zap.Error(err),
		)
		apps = nil
	}
	return decision, apps, nil
}

// classify maps the ledger's reply (or failure) to a terminal decision.
func (s *CreditService) classify(resp *domain.CreditApplyResponse, err error) *domain.CreditDecision {
	if err != nil {
		return &domain.CreditDecision{
			Status:  domain.CreditError,
			Message: err.Error(),
		}
	}

	switch resp.Status {
	case domain.CreditApproved:
		return &domain.CreditDecision{
			Status:          domain.CreditApproved,
			RequestedAmount: resp.RequestedAmount,
			Message:         fmt.Sprintf("Congratulations! Your credit of %.2f TL was approved and deposited to your account.", resp.RequestedAmount),
		}
	case domain.CreditRejected:
		return &domain.CreditDecision{
			Status:          domain.CreditRejected,
			RejectionReason: resp.RejectionReason,
			Message:         fmt.Sprintf("Unfortunately your application was rejected. Reason: %s", resp.RejectionReason),
		}
	default:
		return &domain.CreditDecision{
			Status:  domain.CreditPending,
			Message: "Your application was received and is under review.",
		}
	}
}

// History returns the customer's applications, newest first. The sort is
// stable: rows sharing an application date keep the ledger's order.
func (s *CreditService) History(ctx context.Context, customerID int64) ([]domain.CreditApplication, error) {
	ctx, span := creditTracer.Start(ctx, "CreditService.History")
	defer span.End()
	span.SetAttributes(attribute.Int64("customer.id", customerID))

	raw, err := s.api.History(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]domain.CreditApplication, 0, len(raw))
	for _, r := range raw {
		out = append(out, domain.CreditApplication{
			ID:               r.ID,
			CustomerID:       r.CustomerID,
			RequestedAmount:  r.RequestedAmount,
			InstallmentCount: r.InstallmentCount,
			Purpose:          r.Purpose,
			Status:           r.Status,
			RejectionReason:  r.RejectionReason,
			AppliedAt:        r.AppliedAt.Time(now),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppliedAt.After(out[j].AppliedAt)
	})
	return out, nil
}
