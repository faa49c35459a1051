package configs

import "time"

// GoogleAds holds the OAuth client and Ads API credentials shared by every
// user of the dashboard. User-specific refresh tokens come from sessions.
type GoogleAds struct {
	ClientID       string `env:"CLIENT_ID"`
	ClientSecret   string `env:"CLIENT_SECRET"`
	DeveloperToken string `env:"DEVELOPER_TOKEN"`
	// LoginCustomerID is the manager account the calls are made through. It
	// is sent as the login-customer-id header when set.
	LoginCustomerID string `env:"LOGIN_CUSTOMER_ID"`
	// RedirectURL overrides the OAuth callback derived from HTTP_BASE_URL.
	RedirectURL string        `env:"REDIRECT_URL"`
	Endpoint    string        `env:"ENDPOINT" envDefault:"https://googleads.googleapis.com"`
	APIVersion  string        `env:"API_VERSION" envDefault:"v17"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
