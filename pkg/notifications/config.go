package notifications

import "time"

// Config holds the sweeper settings loaded from the environment.
type Config struct {
	PullInterval time.Duration `env:"NOTIFICATIONS_PULL_INTERVAL" envDefault:"30s"`
	BatchSize    int           `env:"NOTIFICATIONS_BATCH_SIZE" envDefault:"50"`
	MaxRetries   int           `env:"NOTIFICATIONS_MAX_RETRIES" envDefault:"3"`
	StaleAfter   time.Duration `env:"NOTIFICATIONS_STALE_AFTER" envDefault:"10m"`
}
