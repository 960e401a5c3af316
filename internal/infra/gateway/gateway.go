// Package gateway is the single chokepoint through which every remote
// ledger call passes. It owns error-shape uniformity: transport failures,
// non-2xx rejections, and empty or malformed success bodies all resolve to
// one predictable contract for the workflows above it.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/observability"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/resilience"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("gateway")

// Gateway executes HTTP requests against the remote ledger service with
// consistent error surfacing. It holds no session state and never retries
// on its own; a circuit breaker and a bulkhead sit in front of the transport.
type Gateway struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	bulkhead   *resilience.Bulkhead
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// New creates a gateway for the ledger service at baseURL.
func New(httpClient *http.Client, baseURL string, cb *gobreaker.CircuitBreaker, bh *resilience.Bulkhead, metrics *observability.Metrics, logger *zap.Logger) *Gateway {
	return &Gateway{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		cb:         cb,
		bulkhead:   bh,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute runs one request and returns the response payload.
//
// Contract:
//   - caller headers are merged over a default Content-Type: application/json;
//     a caller value for the same key wins
//   - transport failure → *domain.ErrNetwork
//   - non-2xx → *domain.ErrHTTP, message taken from the body's "message"
//     field when the body is JSON, otherwise the raw body text
//   - 204 → nil payload, no body parse attempted
//   - 2xx with an unparsable body → nil payload, never a parse error
func (g *Gateway) Execute(ctx context.Context, method, endpoint string, body any, headers map[string]string) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "Gateway.Execute")
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.endpoint", endpoint),
	)

	if err := g.bulkhead.Acquire(ctx); err != nil {
		return nil, &domain.ErrNetwork{Endpoint: endpoint, Err: err}
	}
	defer g.bulkhead.Release()

	result, err := g.cb.Execute(func() (any, error) {
		return g.doRequest(ctx, method, endpoint, body, headers)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			g.metrics.IncrRequest("error")
			return nil, &domain.ErrCircuitOpen{Service: "ledger"}
		}
		g.metrics.IncrRequest("error")
		return nil, err
	}

	g.metrics.IncrRequest("success")
	if result == nil {
		return nil, nil
	}
	return result.(json.RawMessage), nil
}

func (g *Gateway) doRequest(ctx context.Context, method, endpoint string, body any, headers map[string]string) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.ErrParse{What: "request body", Err: err}
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+endpoint, reader)
	if err != nil {
		g.logger.Error("gateway: failed to create request",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, &domain.ErrNetwork{Endpoint: endpoint, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error("gateway: request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		g.metrics.IncrLedgerError("network")
		return nil, &domain.ErrNetwork{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		g.metrics.IncrLedgerError("network")
		return nil, &domain.ErrNetwork{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := errorMessage(respBody)
		g.logger.Warn("gateway: non-2xx response",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		g.metrics.IncrLedgerError("http")
		return nil, &domain.ErrHTTP{Status: resp.StatusCode, Message: msg}
	}

	g.logger.Debug("gateway: request OK",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil // no body parse attempted
	}
	// A successful response with an empty or malformed body degrades to a
	// null payload, never a parse error.
	if len(bytes.TrimSpace(respBody)) == 0 || !json.Valid(respBody) {
		return nil, nil
	}
	return json.RawMessage(respBody), nil
}

// errorMessage extracts the server-authored message from an arbitrary error
// body: the JSON "message" field when present, the raw text for non-JSON
// bodies, and the generic fallback for JSON that carries no message.
func errorMessage(body []byte) string {
	if m := gjson.GetBytes(body, "message"); m.Exists() {
		return m.String()
	}
	text := strings.TrimSpace(string(body))
	if text == "" || json.Valid(body) {
		return "An error occurred"
	}
	return text
}
