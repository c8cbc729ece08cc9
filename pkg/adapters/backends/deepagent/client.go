package deepagent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aescanero/legalgw/pkg/domain"
	"go.uber.org/zap"
)

// NoAnswerFallback is returned when the agent response carries no
// output text. A successful outcome, not an error.
const NoAnswerFallback = "No answer from deep agent."

// Client calls the reasoning agent service with stateless sessions
type Client struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

type askRequest struct {
	Query queryText `json:"query"`
	// Session is always empty: every call is stateless with no
	// continuation.
	Session struct{} `json:"session"`
}

type queryText struct {
	Text string `json:"text"`
}

type askResponse struct {
	Output struct {
		Text string `json:"text"`
	} `json:"output"`
}

// NewClient creates a new agent backend client
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Ask sends a query to the agent and returns its answer text. Missing
// output fields resolve to the fallback answer, never an error.
func (c *Client) Ask(ctx context.Context, query, token string) (string, error) {
	payload, err := json.Marshal(askRequest{Query: queryText{Text: query}})
	if err != nil {
		return "", &domain.BackendError{Route: domain.RouteAgent, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &domain.BackendError{Route: domain.RouteAgent, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &domain.BackendError{Route: domain.RouteAgent, Err: fmt.Errorf("agent request failed: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.BackendError{Route: domain.RouteAgent, Err: fmt.Errorf("agent backend returned status %d", resp.StatusCode)}
	}

	var body askResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &domain.BackendError{Route: domain.RouteAgent, Err: fmt.Errorf("failed to decode agent response: %w", err)}
	}

	if body.Output.Text == "" {
		c.logger.Debug("agent response carried no output text")
		return NoAnswerFallback, nil
	}

	return body.Output.Text, nil
}
