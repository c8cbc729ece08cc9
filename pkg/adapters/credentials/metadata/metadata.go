package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aescanero/legalgw/pkg/domain"
	"go.uber.org/zap"
)

const providerName = "metadata"

// Provider acquires access tokens from the instance metadata server.
// This is the production path: the token belongs to the service account
// attached to the running instance.
type Provider struct {
	tokenURL string
	client   *http.Client
	logger   *zap.Logger
}

// tokenResponse is the metadata server token body. Only access_token is
// consulted; expiry is managed by the metadata server itself.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// NewProvider creates a metadata server credential provider
func NewProvider(tokenURL string, timeout time.Duration, logger *zap.Logger) *Provider {
	return &Provider{
		tokenURL: tokenURL,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return providerName
}

// Token fetches a fresh access token from the metadata server
func (p *Provider) Token(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.tokenURL, nil)
	if err != nil {
		return "", &domain.AuthError{Provider: providerName, Err: fmt.Errorf("failed to build token request: %w", err)}
	}
	req.Header.Set("Metadata-Flavor", "Google")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &domain.AuthError{Provider: providerName, Err: fmt.Errorf("metadata server unreachable: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.AuthError{Provider: providerName, Err: fmt.Errorf("metadata server returned status %d", resp.StatusCode)}
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &domain.AuthError{Provider: providerName, Err: fmt.Errorf("failed to decode token response: %w", err)}
	}

	if body.AccessToken == "" {
		return "", &domain.AuthError{Provider: providerName, Err: fmt.Errorf("token response missing access_token")}
	}

	p.logger.Debug("acquired access token from metadata server",
		zap.Int("expires_in", body.ExpiresIn))

	return body.AccessToken, nil
}
