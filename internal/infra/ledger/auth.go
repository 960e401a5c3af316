package ledger

import (
	"context"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"

	"go.uber.org/zap"
)

// Login authenticates against POST /auth/login.
func (c *Client) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Login")
	defer span.End()

	var resp domain.LoginResponse
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.ID == 0 {
		c.logger.Warn("ledger: login succeeded without an identity payload")
		return nil, &domain.ErrParse{What: "login response", Err: errEmptyBody}
	}
	return &resp, nil
}

// Register creates a customer via POST /auth/register.
func (c *Client) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.RegisterResponse, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Register")
	defer span.End()

	var resp domain.RegisterResponse
	if err := c.post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	c.logger.Info("ledger: customer registered", zap.Int64("customer_id", resp.ID))
	return &resp, nil
}
