package sms

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// MaxMessageLen caps one logical message at three concatenated GSM parts.
const MaxMessageLen = 480

// SMSSender represents an interface for sending text messages.
type SMSSender interface {
	SendSMS(ctx context.Context, params SendSMSParams) error
}

// SendSMSParams represents the parameters for sending a text message.
type SendSMSParams struct {
	To      string `json:"to"`      // Destination in canonical +91XXXXXXXXXX form
	Message string `json:"message"` // Plain-text body
}

var destinationRegex = regexp.MustCompile(`^\+91[6-9]\d{9}$`)

// Validate checks the parameters before any gateway call so malformed
// sends fail locally with a clear error.
func (p SendSMSParams) Validate() error {
	if strings.TrimSpace(p.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !destinationRegex.MatchString(p.To) {
		return fmt.Errorf("%w: To must be a canonical +91 mobile number", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Message) == "" {
		return fmt.Errorf("%w: Message is required", ErrInvalidParams)
	}
	if len(p.Message) > MaxMessageLen {
		return fmt.Errorf("%w: Message exceeds %d characters", ErrInvalidParams, MaxMessageLen)
	}
	return nil
}
