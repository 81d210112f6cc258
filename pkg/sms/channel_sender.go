package sms

import (
	"context"
	"fmt"

	"github.com/carebook/carebook/pkg/notifications"
)

// RecipientResolver maps a user ID to their verified mobile number in
// canonical +91XXXXXXXXXX form.
type RecipientResolver interface {
	PhoneNumber(ctx context.Context, userID string) (string, error)
}

// RecipientResolverFunc adapts a function to the RecipientResolver interface.
type RecipientResolverFunc func(ctx context.Context, userID string) (string, error)

func (f RecipientResolverFunc) PhoneNumber(ctx context.Context, userID string) (string, error) {
	return f(ctx, userID)
}

// messages per event type. SMS bodies are short plain text; longer
// context lives in the email variant of the same event.
var messages = map[notifications.EventType]func(p map[string]string) string{
	notifications.EventAppointmentConfirmed: func(p map[string]string) string {
		return fmt.Sprintf("Your appointment with %s on %s at %s is confirmed.", p["doctor_name"], p["date"], p["start_time"])
	},
	notifications.EventAppointmentCancelled: func(p map[string]string) string {
		return fmt.Sprintf("Your appointment with %s on %s at %s was cancelled.", p["doctor_name"], p["date"], p["start_time"])
	},
	notifications.EventAppointmentRescheduled: func(p map[string]string) string {
		return fmt.Sprintf("Your appointment with %s moved to %s at %s.", p["doctor_name"], p["new_date"], p["new_start_time"])
	},
	notifications.EventPaymentSucceeded: func(p map[string]string) string {
		return fmt.Sprintf("Payment of %s received for booking %s.", p["amount"], p["booking_id"])
	},
	notifications.EventPaymentFailed: func(p map[string]string) string {
		return fmt.Sprintf("Payment of %s for booking %s failed. Please retry.", p["amount"], p["booking_id"])
	},
	notifications.EventReviewRequest: func(p map[string]string) string {
		return fmt.Sprintf("How was your appointment with %s? Share your experience in the app.", p["doctor_name"])
	},
}

// Compose renders the SMS text for a notification item.
func Compose(item notifications.Item) (string, error) {
	build, ok := messages[item.Type]
	if !ok {
		return "", fmt.Errorf("no SMS template for event type %q", item.Type)
	}
	return build(item.Payload), nil
}

// channelSender adapts an SMSSender to the notification sweeper.
type channelSender struct {
	sender    SMSSender
	recipient RecipientResolver
}

// NewChannelSender wraps an SMSSender as a notifications.Sender.
func NewChannelSender(sender SMSSender, recipient RecipientResolver) notifications.Sender {
	return &channelSender{sender: sender, recipient: recipient}
}

func (s *channelSender) Channel() notifications.Channel {
	return notifications.ChannelSMS
}

func (s *channelSender) Send(ctx context.Context, item notifications.Item) error {
	to, err := s.recipient.PhoneNumber(ctx, item.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve recipient phone: %w", err)
	}

	message, err := Compose(item)
	if err != nil {
		return err
	}

	return s.sender.SendSMS(ctx, SendSMSParams{To: to, Message: message})
}
