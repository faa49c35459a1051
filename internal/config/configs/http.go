package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// BaseURL is the externally visible address of the dashboard. It is used
	// to build the OAuth redirect URL when GOOGLE_ADS_REDIRECT_URL is unset.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	// AllowedOrigins lists the origins the dashboard frontend is served from.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	// ShutdownTimeout bounds graceful shutdown. Bulk deployments in flight
	// may need most of it.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	// SecureCookies marks the session cookie Secure. Disable for plain http
	// development setups.
	SecureCookies bool `env:"SECURE_COOKIES" envDefault:"true"`
}
