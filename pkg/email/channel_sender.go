package email

import (
	"context"
	"fmt"

	"github.com/carebook/carebook/pkg/notifications"
)

// RecipientResolver maps a user ID to their verified email address.
type RecipientResolver interface {
	EmailAddress(ctx context.Context, userID string) (string, error)
}

// RecipientResolverFunc adapts a function to the RecipientResolver interface.
type RecipientResolverFunc func(ctx context.Context, userID string) (string, error)

func (f RecipientResolverFunc) EmailAddress(ctx context.Context, userID string) (string, error) {
	return f(ctx, userID)
}

// channelSender adapts an EmailSender to the notification sweeper.
type channelSender struct {
	sender    EmailSender
	recipient RecipientResolver
}

// NewChannelSender wraps an EmailSender as a notifications.Sender.
func NewChannelSender(sender EmailSender, recipient RecipientResolver) notifications.Sender {
	return &channelSender{sender: sender, recipient: recipient}
}

func (s *channelSender) Channel() notifications.Channel {
	return notifications.ChannelEmail
}

func (s *channelSender) Send(ctx context.Context, item notifications.Item) error {
	to, err := s.recipient.EmailAddress(ctx, item.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve recipient email: %w", err)
	}

	subject, body, err := Compose(item)
	if err != nil {
		return err
	}

	return s.sender.SendEmail(ctx, SendEmailParams{
		SendTo:   to,
		Subject:  subject,
		BodyHTML: body,
		Tag:      string(item.Type),
	})
}
