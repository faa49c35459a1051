package config

import (
	"github.com/caarlos0/env/v11"

	"gads-manager/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the configs package for defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL template store.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis backs the session store.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// GoogleAds holds the OAuth client and developer credentials.
	GoogleAds configs.GoogleAds `envPrefix:"GOOGLE_ADS_"`

	// Deploy tunes the bulk deployer.
	Deploy configs.Deploy `envPrefix:"DEPLOY_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// OAuthRedirectURL returns the callback URL registered with Google.
func (c Config) OAuthRedirectURL() string {
	if c.GoogleAds.RedirectURL != "" {
		return c.GoogleAds.RedirectURL
	}
	return c.HTTP.BaseURL + "/auth/google/callback"
}
