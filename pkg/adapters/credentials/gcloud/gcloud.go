package gcloud

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/aescanero/legalgw/pkg/domain"
	"go.uber.org/zap"
)

const providerName = "gcloud"

// Provider acquires access tokens by shelling out to the gcloud CLI.
// This is the local development path and requires gcloud to be installed
// and logged in.
type Provider struct {
	gcloudPath string
	logger     *zap.Logger
}

// NewProvider creates a gcloud CLI credential provider
func NewProvider(gcloudPath string, logger *zap.Logger) *Provider {
	return &Provider{
		gcloudPath: gcloudPath,
		logger:     logger,
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return providerName
}

// Token runs `gcloud auth print-access-token` and returns its trimmed
// standard output
func (p *Provider) Token(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, p.gcloudPath, "auth", "print-access-token")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		p.logger.Debug("gcloud invocation failed",
			zap.String("stderr", strings.TrimSpace(stderr.String())),
			zap.Error(err))
		return "", &domain.AuthError{Provider: providerName, Err: fmt.Errorf("gcloud invocation failed: %w", err)}
	}

	token := strings.TrimSpace(stdout.String())
	if token == "" {
		return "", &domain.AuthError{Provider: providerName, Err: fmt.Errorf("gcloud returned an empty token")}
	}

	return token, nil
}
