package ledger

import (
	"context"
	"fmt"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// Apply submits a credit application via POST /credits/apply and returns
// the raw underwriting reply. An empty reply decodes to an empty status,
// which the workflow classifies as PENDING.
func (c *Client) Apply(ctx context.Context, req *domain.CreditApplyRequest) (*domain.CreditApplyResponse, error) {
	ctx, span := tracer.Start(ctx, "Ledger.CreditApply")
	defer span.End()
	span.SetAttributes(attribute.Int64("customer.id", req.CustomerID))

	var resp domain.CreditApplyResponse
	if err := c.post(ctx, "/credits/apply", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// History fetches the customer's past applications from
// GET /credits/history/{customerId}.
func (c *Client) History(ctx context.Context, customerID int64) ([]domain.RawCreditApplication, error) {
	ctx, span := tracer.Start(ctx, "Ledger.CreditHistory")
	defer span.End()
	span.SetAttributes(attribute.Int64("customer.id", customerID))

	var rows []domain.RawCreditApplication
	ok, err := c.get(ctx, fmt.Sprintf("/credits/history/%d", customerID), &rows)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.RawCreditApplication{}, nil
	}
	return rows, nil
}
