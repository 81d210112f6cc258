package push

import (
	"context"
	"fmt"

	"github.com/carebook/carebook/pkg/notifications"
)

// DeviceTokenResolver maps a user ID to their registered device tokens.
// Users without devices resolve to an empty slice, not an error.
type DeviceTokenResolver interface {
	DeviceTokens(ctx context.Context, userID string) ([]string, error)
}

// DeviceTokenResolverFunc adapts a function to the DeviceTokenResolver interface.
type DeviceTokenResolverFunc func(ctx context.Context, userID string) ([]string, error)

func (f DeviceTokenResolverFunc) DeviceTokens(ctx context.Context, userID string) ([]string, error) {
	return f(ctx, userID)
}

// titles per event type; the body reuses the SMS-length copy pattern.
var titles = map[notifications.EventType]string{
	notifications.EventAppointmentConfirmed:   "Appointment confirmed",
	notifications.EventAppointmentCancelled:   "Appointment cancelled",
	notifications.EventAppointmentRescheduled: "Appointment rescheduled",
	notifications.EventPaymentSucceeded:       "Payment received",
	notifications.EventPaymentFailed:          "Payment failed",
	notifications.EventReviewRequest:          "How was your visit?",
}

// Compose renders the push title and body for a notification item.
func Compose(item notifications.Item) (title, body string, err error) {
	title, ok := titles[item.Type]
	if !ok {
		return "", "", fmt.Errorf("no push template for event type %q", item.Type)
	}

	p := item.Payload
	switch item.Type {
	case notifications.EventAppointmentConfirmed:
		body = fmt.Sprintf("%s on %s at %s", p["doctor_name"], p["date"], p["start_time"])
	case notifications.EventAppointmentCancelled:
		body = fmt.Sprintf("%s on %s at %s was cancelled", p["doctor_name"], p["date"], p["start_time"])
	case notifications.EventAppointmentRescheduled:
		body = fmt.Sprintf("%s moved to %s at %s", p["doctor_name"], p["new_date"], p["new_start_time"])
	case notifications.EventPaymentSucceeded:
		body = fmt.Sprintf("%s received for booking %s", p["amount"], p["booking_id"])
	case notifications.EventPaymentFailed:
		body = fmt.Sprintf("%s for booking %s failed", p["amount"], p["booking_id"])
	case notifications.EventReviewRequest:
		body = fmt.Sprintf("Rate your appointment with %s", p["doctor_name"])
	}
	return title, body, nil
}

// channelSender adapts a PushSender to the notification sweeper.
type channelSender struct {
	sender   PushSender
	resolver DeviceTokenResolver
}

// NewChannelSender wraps a PushSender as a notifications.Sender.
func NewChannelSender(sender PushSender, resolver DeviceTokenResolver) notifications.Sender {
	return &channelSender{sender: sender, resolver: resolver}
}

func (s *channelSender) Channel() notifications.Channel {
	return notifications.ChannelPush
}

// Send fans the notification out to every registered device. A user with
// no devices is a successful no-op; partial device failures fail the send
// so the sweep retries.
func (s *channelSender) Send(ctx context.Context, item notifications.Item) error {
	tokens, err := s.resolver.DeviceTokens(ctx, item.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve device tokens: %w", err)
	}
	if len(tokens) == 0 {
		return nil
	}

	title, body, err := Compose(item)
	if err != nil {
		return err
	}

	for _, token := range tokens {
		err := s.sender.SendPush(ctx, SendPushParams{
			DeviceToken: token,
			Title:       title,
			Body:        body,
			Data:        item.Payload,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
