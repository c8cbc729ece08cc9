package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the gateway. It is built once at
// process start and passed into the components that need it; nothing
// reads the environment after Load returns.
type Config struct {
	// Server configuration
	HTTPPort int    `env:"LEGALGW_HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Google Cloud project settings
	ProjectID string `env:"PROJECT_ID" envDefault:"your-project-id"`
	Location  string `env:"LOCATION" envDefault:"us-central1"`

	// LocalDev selects the gcloud CLI credential provider instead of the
	// metadata server
	LocalDev bool `env:"LOCAL_DEV"`

	// Credentials configuration
	Credentials CredentialsConfig

	// Backend endpoints
	Search SearchConfig
	Agent  AgentConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// CredentialsConfig holds token acquisition configuration
type CredentialsConfig struct {
	// MetadataTokenURL is the well-known instance metadata token endpoint
	MetadataTokenURL string        `env:"METADATA_TOKEN_URL" envDefault:"http://metadata/computeMetadata/v1/instance/service-accounts/default/token"`
	Timeout          time.Duration `env:"TOKEN_TIMEOUT" envDefault:"5s"`
	GcloudPath       string        `env:"GCLOUD_PATH" envDefault:"gcloud"`
}

// SearchConfig holds document search backend configuration.
//
// The endpoint default is a deliberate placeholder: an unconfigured
// deployment fails at call time with a clear transport error rather than
// refusing to boot.
type SearchConfig struct {
	Endpoint string        `env:"VERTEX_SEARCH_URL" envDefault:"https://discoveryengine.googleapis.com/v1/projects/your-project-id/locations/global/collections/default_collection/dataStores/DATASTORE_ID/servingConfigs/default_search:search"`
	PageSize int           `env:"SEARCH_PAGE_SIZE" envDefault:"3"`
	Timeout  time.Duration `env:"SEARCH_TIMEOUT" envDefault:"30s"`
}

// AgentConfig holds reasoning agent backend configuration
type AgentConfig struct {
	Endpoint string        `env:"DEEP_AGENT_ENDPOINT" envDefault:"https://us-central1-agents.googleapis.com/v1/projects/PROJECT_NUMBER/locations/us-central1/reasoningEngines/ENGINE_ID:sessions"`
	Timeout  time.Duration `env:"AGENT_TIMEOUT" envDefault:"60s"`
}

// TimeoutConfig holds process-level timeout configuration
type TimeoutConfig struct {
	ShutdownTimeout time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid. Endpoint URLs are not
// checked here: placeholder defaults are expected to fail at call time.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	if c.Search.PageSize < 1 {
		return fmt.Errorf("search page size must be at least 1")
	}

	if c.Credentials.Timeout <= 0 || c.Search.Timeout <= 0 || c.Agent.Timeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
