// Package sms sends transactional text messages (appointment reminders,
// payment alerts) through an HTTP SMS gateway.
//
// The production path is GatewayClient, a JSON-over-HTTP client for the
// configured provider, wrapped in a per-destination rate limit (Redis
// fixed window) so a runaway sweep cannot burn the gateway quota. For
// local development, DevSender writes each message to disk instead.
//
// Message bodies are composed from already-sanitized notification
// payloads; this package does not sanitize content itself.
//
// NewChannelSender adapts any SMSSender to the notifications.Sender
// interface so the notification sweeper can deliver over SMS.
package sms
