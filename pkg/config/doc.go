// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 to:
//
//   - Load values from one or multiple .env files (falling back to the
//     default .env in the current working directory).
//   - Parse the environment into any Go struct using field tags.
//   - Cache each successfully loaded configuration type so it is only parsed
//     once per process.
//   - Expose panicking variants (MustLoadEnv, MustLoad) for configuration
//     the application cannot start without.
//   - Allow explicit cache reset or force reload for tests.
//
// Each configuration type is cached under its fully-qualified type name,
// guarded by a sync.Once so parsing runs at most once even under concurrent
// access.
//
// # Usage
//
// Describe your configuration with env tags:
//
//	type NotificationsConfig struct {
//	    PullInterval time.Duration `env:"NOTIFICATIONS_PULL_INTERVAL" envDefault:"30s"`
//	    BatchSize    int           `env:"NOTIFICATIONS_BATCH_SIZE" envDefault:"50"`
//	}
//
// Then load it wherever it is needed:
//
//	var cfg NotificationsConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Load reads the default .env file on first use; LoadEnv loads explicit
// files, later files overriding earlier ones.
package config
