// Package push delivers in-app push notifications through an HTTP push
// gateway (FCM-style JSON relay).
//
// The production path is GatewayClient; DevSender writes notifications
// to disk for local development. NewChannelSender adapts any PushSender
// to the notifications.Sender interface so the notification sweeper can
// deliver over push.
//
// Notification content is composed from already-sanitized payloads; this
// package does not sanitize content itself.
package push
