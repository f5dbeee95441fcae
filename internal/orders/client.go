package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"air-store/internal/model"

	"github.com/rs/zerolog"
)

// Submitter submits a composed order to the external backend and
// returns the backend-assigned order identifier.
type Submitter interface {
	Submit(ctx context.Context, order *model.Order) (string, error)
}

// client implements Submitter over the backend's HTTP API.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates an order submission client for the given backend
// base URL.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) Submitter {
	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With().Str("component", "orders-client").Logger(),
	}
}

// errorBody is the shape of a backend failure response; only the
// detail field is used.
type errorBody struct {
	Detail string `json:"detail"`
}

// Submit makes exactly one POST to {base_url}/api/orders. It is not
// retried here; re-submission is a user decision and is deduplicated
// by the backend on the order's idempotency key.
func (c *client) Submit(ctx context.Context, order *model.Order) (string, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return "", fmt.Errorf("failed to marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", order.IdempotencyKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("order submission request failed")
		return "", fmt.Errorf("order submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		// A non-JSON or detail-less error body falls through to the
		// generic message.
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("detail", eb.Detail).
			Msg("order rejected by backend")
		return "", model.NewSubmissionError(resp.StatusCode, eb.Detail)
	}

	var ack model.OrderAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return "", fmt.Errorf("failed to decode order response: %w", err)
	}
	if ack.OrderID == "" {
		return "", fmt.Errorf("order response missing order_id")
	}

	c.logger.Info().
		Str("order_id", ack.OrderID).
		Int("item_count", len(order.Items)).
		Msg("order submitted")

	return ack.OrderID, nil
}
