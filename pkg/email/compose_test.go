package email_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/pkg/email"
	"github.com/carebook/carebook/pkg/notifications"
)

func TestCompose(t *testing.T) {
	t.Run("appointment confirmed", func(t *testing.T) {
		subject, body, err := email.Compose(notifications.Item{
			Type: notifications.EventAppointmentConfirmed,
			Payload: map[string]string{
				"doctor_name": "Dr. Mehta",
				"date":        "2026-09-15",
				"start_time":  "10:00",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Your appointment is confirmed", subject)
		assert.Contains(t, body, "Dr. Mehta")
		assert.Contains(t, body, "2026-09-15")
	})

	t.Run("payload values are HTML-escaped", func(t *testing.T) {
		_, body, err := email.Compose(notifications.Item{
			Type: notifications.EventReviewRequest,
			Payload: map[string]string{
				"doctor_name": `Dr. <"Mehta">`,
			},
		})
		require.NoError(t, err)
		assert.NotContains(t, body, `<"Mehta">`)
		assert.Contains(t, body, "&lt;")
	})

	t.Run("unknown event type", func(t *testing.T) {
		_, _, err := email.Compose(notifications.Item{Type: "unknown.event"})
		assert.Error(t, err)
	})
}

// fakeEmailSender records the last send.
type fakeEmailSender struct {
	last email.SendEmailParams
	fail error
}

func (f *fakeEmailSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if f.fail != nil {
		return f.fail
	}
	f.last = params
	return nil
}

func TestChannelSender(t *testing.T) {
	resolver := email.RecipientResolverFunc(func(ctx context.Context, userID string) (string, error) {
		if userID == "user-1" {
			return "patient@example.com", nil
		}
		return "", errors.New("unknown user")
	})

	item := notifications.Item{
		ID:     "item-1",
		UserID: "user-1",
		Type:   notifications.EventPaymentSucceeded,
		Payload: map[string]string{
			"booking_id": "booking-1",
			"amount":     "₹1,250.00",
		},
	}

	t.Run("delivers composed message", func(t *testing.T) {
		fake := &fakeEmailSender{}
		sender := email.NewChannelSender(fake, resolver)

		assert.Equal(t, notifications.ChannelEmail, sender.Channel())
		require.NoError(t, sender.Send(context.Background(), item))
		assert.Equal(t, "patient@example.com", fake.last.SendTo)
		assert.Equal(t, "Payment received", fake.last.Subject)
		assert.Contains(t, fake.last.BodyHTML, "booking-1")
		assert.Equal(t, string(notifications.EventPaymentSucceeded), fake.last.Tag)
	})

	t.Run("unresolvable recipient fails the send", func(t *testing.T) {
		fake := &fakeEmailSender{}
		sender := email.NewChannelSender(fake, resolver)

		unknown := item
		unknown.UserID = "user-2"
		assert.Error(t, sender.Send(context.Background(), unknown))
	})
}
