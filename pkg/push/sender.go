package push

import (
	"context"
	"fmt"
	"strings"
)

// PushSender represents an interface for sending push notifications.
type PushSender interface {
	SendPush(ctx context.Context, params SendPushParams) error
}

// SendPushParams represents the parameters for one push notification.
type SendPushParams struct {
	DeviceToken string            `json:"device_token"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"` // deep-link payload
}

// Validate checks the parameters before any gateway call.
func (p SendPushParams) Validate() error {
	if strings.TrimSpace(p.DeviceToken) == "" {
		return fmt.Errorf("%w: DeviceToken is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: Title is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Body) == "" {
		return fmt.Errorf("%w: Body is required", ErrInvalidParams)
	}
	return nil
}
