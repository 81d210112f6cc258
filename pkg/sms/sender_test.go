package sms_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/pkg/notifications"
	"github.com/carebook/carebook/pkg/sms"
)

func TestSendSMSParamsValidate(t *testing.T) {
	valid := sms.SendSMSParams{
		To:      "+919876543210",
		Message: "Your appointment is confirmed.",
	}

	t.Run("valid params", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*sms.SendSMSParams)
	}{
		{"missing destination", func(p *sms.SendSMSParams) { p.To = "" }},
		{"uncanonical destination", func(p *sms.SendSMSParams) { p.To = "9876543210" }},
		{"landline destination", func(p *sms.SendSMSParams) { p.To = "+911123456789" }},
		{"missing message", func(p *sms.SendSMSParams) { p.Message = "  " }},
		{"oversized message", func(p *sms.SendSMSParams) { p.Message = strings.Repeat("a", 481) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)
			assert.ErrorIs(t, params.Validate(), sms.ErrInvalidParams)
		})
	}
}

func TestGatewayClient(t *testing.T) {
	t.Run("posts JSON with auth header", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "queued"})
		}))
		defer server.Close()

		client, err := sms.NewGatewayClient(sms.Config{
			GatewayURL:  server.URL,
			APIKey:      "test-key",
			SenderID:    "CAREBK",
			SendTimeout: 5 * time.Second,
		})
		require.NoError(t, err)

		err = client.SendSMS(context.Background(), sms.SendSMSParams{
			To:      "+919876543210",
			Message: "Your appointment is confirmed.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "+919876543210", gotBody["to"])
		assert.Equal(t, "CAREBK", gotBody["sender"])
	})

	t.Run("non-2xx is a send failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exhausted", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client, err := sms.NewGatewayClient(sms.Config{
			GatewayURL:  server.URL,
			APIKey:      "test-key",
			SenderID:    "CAREBK",
			SendTimeout: 5 * time.Second,
		})
		require.NoError(t, err)

		err = client.SendSMS(context.Background(), sms.SendSMSParams{
			To:      "+919876543210",
			Message: "hello",
		})
		assert.ErrorIs(t, err, sms.ErrFailedToSendSMS)
	})

	t.Run("config validation", func(t *testing.T) {
		_, err := sms.NewGatewayClient(sms.Config{APIKey: "k", SenderID: "s"})
		assert.ErrorIs(t, err, sms.ErrInvalidConfig)

		_, err = sms.NewGatewayClient(sms.Config{GatewayURL: "http://x", SenderID: "s"})
		assert.ErrorIs(t, err, sms.ErrInvalidConfig)
	})
}

// fakeLimiter allows a fixed number of sends.
type fakeLimiter struct {
	remaining int
}

func (l *fakeLimiter) Allow(ctx context.Context, destination string) error {
	if l.remaining <= 0 {
		return sms.ErrRateLimitExceeded
	}
	l.remaining--
	return nil
}

// fakeSMSSender records sent messages.
type fakeSMSSender struct {
	sent []sms.SendSMSParams
}

func (f *fakeSMSSender) SendSMS(ctx context.Context, params sms.SendSMSParams) error {
	f.sent = append(f.sent, params)
	return nil
}

func TestLimitedSender(t *testing.T) {
	fake := &fakeSMSSender{}
	limited := sms.NewLimitedSender(fake, &fakeLimiter{remaining: 2})

	params := sms.SendSMSParams{To: "+919876543210", Message: "hi"}

	require.NoError(t, limited.SendSMS(context.Background(), params))
	require.NoError(t, limited.SendSMS(context.Background(), params))
	assert.ErrorIs(t, limited.SendSMS(context.Background(), params), sms.ErrRateLimitExceeded)
	assert.Len(t, fake.sent, 2)
}

func TestComposeAndChannelSender(t *testing.T) {
	resolver := sms.RecipientResolverFunc(func(ctx context.Context, userID string) (string, error) {
		return "+919876543210", nil
	})

	fake := &fakeSMSSender{}
	sender := sms.NewChannelSender(fake, resolver)
	assert.Equal(t, notifications.ChannelSMS, sender.Channel())

	err := sender.Send(context.Background(), notifications.Item{
		UserID: "user-1",
		Type:   notifications.EventAppointmentRescheduled,
		Payload: map[string]string{
			"doctor_name":    "Dr. Mehta",
			"new_date":       "2026-09-16",
			"new_start_time": "11:30",
		},
	})
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)
	assert.Equal(t, "+919876543210", fake.sent[0].To)
	assert.Contains(t, fake.sent[0].Message, "Dr. Mehta")
	assert.Contains(t, fake.sent[0].Message, "2026-09-16")

	t.Run("unknown event type fails", func(t *testing.T) {
		err := sender.Send(context.Background(), notifications.Item{
			UserID: "user-1",
			Type:   "unknown.event",
		})
		assert.Error(t, err)
	})
}

func TestDevSender(t *testing.T) {
	dir := t.TempDir()
	sender := sms.NewDevSender(dir)

	require.NoError(t, sender.SendSMS(context.Background(), sms.SendSMSParams{
		To:      "+919876543210",
		Message: "Your appointment is confirmed.",
	}))

	assert.ErrorIs(t, sender.SendSMS(context.Background(), sms.SendSMSParams{}), sms.ErrInvalidParams)
}
