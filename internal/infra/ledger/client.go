// Package ledger is the typed client for the remote DinoBank ledger/credit
// service. Every call goes through the request gateway; this package only
// owns endpoint paths and wire-shape mapping.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("ledger")

// errEmptyBody marks a 2xx response whose body was required but absent.
var errEmptyBody = errors.New("empty response body")

// Client implements port.LedgerAPI against the remote service's JSON
// HTTP contract.
type Client struct {
	gw     port.Gateway
	logger *zap.Logger
}

// NewClient creates a ledger client on top of the given gateway.
func NewClient(gw port.Gateway, logger *zap.Logger) *Client {
	return &Client{gw: gw, logger: logger}
}

// get executes a GET and decodes the payload into out. A nil payload leaves
// out untouched and reports false.
func (c *Client) get(ctx context.Context, endpoint string, out any) (bool, error) {
	payload, err := c.gw.Execute(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return false, err
	}
	if payload == nil {
		return false, nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return false, &domain.ErrParse{What: endpoint, Err: err}
	}
	return true, nil
}

// post executes a POST and decodes the payload into out when both are
// present. A nil out discards the confirmation body.
func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	payload, err := c.gw.Execute(ctx, http.MethodPost, endpoint, body, nil)
	if err != nil {
		return err
	}
	if out == nil || payload == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &domain.ErrParse{What: endpoint, Err: err}
	}
	return nil
}
