package ledger

import (
	"context"
	"fmt"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// GetHistory fetches the raw transaction records for an account from
// GET /transactions/history/{accountId}. Records come back pre-normalization.
func (c *Client) GetHistory(ctx context.Context, accountID int64) ([]domain.RawTransaction, error) {
	ctx, span := tracer.Start(ctx, "Ledger.GetHistory")
	defer span.End()
	span.SetAttributes(attribute.Int64("account.id", accountID))

	var rows []domain.RawTransaction
	ok, err := c.get(ctx, fmt.Sprintf("/transactions/history/%d", accountID), &rows)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.RawTransaction{}, nil
	}
	return rows, nil
}

// Transfer submits a peer-to-peer transfer via POST /transactions/transfer.
// The confirmation body carries nothing the workflows need; the refreshed
// summary and history are the source of truth afterwards.
func (c *Client) Transfer(ctx context.Context, req *domain.TransferRequest) error {
	ctx, span := tracer.Start(ctx, "Ledger.Transfer")
	defer span.End()

	if err := c.post(ctx, "/transactions/transfer", req, nil); err != nil {
		return err
	}
	c.logger.Info("ledger: transfer accepted",
		zap.String("from", req.FromAccountNumber),
		zap.String("to", req.ToAccountNumber),
		zap.Float64("amount", req.Amount),
	)
	return nil
}
