package configs

import "time"

// Deploy tunes the bulk campaign deployer. Defaults match the limits the
// dashboard was designed around; raising Concurrency increases the load on
// the Ads API quota of every target account's manager.
type Deploy struct {
	MaxBatch     int           `env:"MAX_BATCH" envDefault:"20"`
	Concurrency  int           `env:"CONCURRENCY" envDefault:"3"`
	MaxAttempts  int           `env:"MAX_ATTEMPTS" envDefault:"2"`
	RetryBackoff time.Duration `env:"RETRY_BACKOFF" envDefault:"1s"`
}
