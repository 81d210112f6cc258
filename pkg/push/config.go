package push

import "time"

// Config holds push gateway configuration. GatewayURL and APIKey are
// optional to support development environments where notifications are
// written to disk instead.
type Config struct {
	GatewayURL   string        `env:"PUSH_GATEWAY_URL"`
	APIKey       string        `env:"PUSH_API_KEY"`
	SendTimeout  time.Duration `env:"PUSH_SEND_TIMEOUT" envDefault:"10s"`
	DevOutputDir string        `env:"PUSH_DEV_OUTPUT_DIR" envDefault:"./tmp/push"`
}
