package ledger

import (
	"context"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
)

// GetSnapshot fetches the ledger's debug state dump from GET /admin/db.
func (c *Client) GetSnapshot(ctx context.Context) (*domain.DatabaseSnapshot, error) {
	ctx, span := tracer.Start(ctx, "Ledger.GetSnapshot")
	defer span.End()

	var snap domain.DatabaseSnapshot
	ok, err := c.get(ctx, "/admin/db", &snap)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &domain.DatabaseSnapshot{}, nil
	}
	return &snap, nil
}
