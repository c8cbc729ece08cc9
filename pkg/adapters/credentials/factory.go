package credentials

import (
	"github.com/aescanero/legalgw/internal/config"
	"github.com/aescanero/legalgw/pkg/adapters/credentials/gcloud"
	"github.com/aescanero/legalgw/pkg/adapters/credentials/metadata"
	"github.com/aescanero/legalgw/pkg/ports"
	"go.uber.org/zap"
)

// NewProvider creates a credential provider based on the run mode:
// the gcloud CLI in local development, the metadata server otherwise
func NewProvider(cfg *config.Config, logger *zap.Logger) ports.CredentialProvider {
	if cfg.LocalDev {
		return gcloud.NewProvider(cfg.Credentials.GcloudPath, logger)
	}
	return metadata.NewProvider(cfg.Credentials.MetadataTokenURL, cfg.Credentials.Timeout, logger)
}
