package ledger

import (
	"context"
	"fmt"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// GetAccountSummary fetches the customer's primary account snapshot from
// GET /accounts/summary/{customerId}.
func (c *Client) GetAccountSummary(ctx context.Context, customerID int64) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "Ledger.GetAccountSummary")
	defer span.End()
	span.SetAttributes(attribute.Int64("customer.id", customerID))

	var acc domain.Account
	ok, err := c.get(ctx, fmt.Sprintf("/accounts/summary/%d", customerID), &acc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.ErrNotFound{Resource: "account", ID: fmt.Sprint(customerID)}
	}
	return &acc, nil
}
