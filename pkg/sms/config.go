package sms

import "time"

// Config holds SMS gateway configuration. GatewayURL and APIKey are
// optional to support development environments where messages are
// written to disk instead.
type Config struct {
	GatewayURL   string        `env:"SMS_GATEWAY_URL"`
	APIKey       string        `env:"SMS_API_KEY"`
	SenderID     string        `env:"SMS_SENDER_ID" envDefault:"CAREBK"`
	SendTimeout  time.Duration `env:"SMS_SEND_TIMEOUT" envDefault:"10s"`
	RateLimit    int           `env:"SMS_RATE_LIMIT" envDefault:"5"`
	RateWindow   time.Duration `env:"SMS_RATE_WINDOW" envDefault:"1h"`
	DevOutputDir string        `env:"SMS_DEV_OUTPUT_DIR" envDefault:"./tmp/sms"`
}
