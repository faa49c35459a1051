package configs

import "time"

// Redis configures the session store.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// SessionTTL is how long a dashboard session stays valid after login.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`
}
