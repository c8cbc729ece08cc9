package vertexsearch

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

// Fixed answers for searches that return nothing usable. These are
// successful outcomes, not errors.
const (
	NoDocumentsAnswer = "No matching documents were found in the legal index."
	NoSnippetAnswer   = "Found documents, but no snippet was available."
)

// Client calls the document search service and extracts the snippet of
// the top result
type Client struct {
	endpoint string
	pageSize int
	client   *http.Client
	logger   *zap.Logger
}

type searchRequest struct {
	Query    string `json:"query"`
	PageSize int    `json:"pageSize"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Snippet string `json:"snippet"`
}

// NewClient creates a new search backend client
func NewClient(endpoint string, pageSize int, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		pageSize: pageSize,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Search issues a search request and returns the top result's snippet.
// Only the first result is ever consulted.
func (c *Client) Search(ctx context.Context, query, token string) (string, error) {
	payload, err := json.Marshal(searchRequest{
		Query:    query,
		PageSize: c.pageSize,
	})
	if err != nil {
		return "", &domain.BackendError{Route: domain.RouteSearch, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &domain.BackendError{Route: domain.RouteSearch, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &domain.BackendError{Route: domain.RouteSearch, Err: fmt.Errorf("search request failed: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.BackendError{Route: domain.RouteSearch, Err: fmt.Errorf("search backend returned status %d", resp.StatusCode)}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &domain.BackendError{Route: domain.RouteSearch, Err: fmt.Errorf("failed to decode search response: %w", err)}
	}

	if len(body.Results) == 0 {
		c.logger.Debug("search returned no results")
		return NoDocumentsAnswer, nil
	}

	snippet := body.Results[0].Snippet
	if snippet == "" {
		return NoSnippetAnswer, nil
	}

	return snippet, nil
}
