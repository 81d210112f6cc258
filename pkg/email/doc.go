// Package email sends transactional mail: appointment confirmations,
// payment receipts, review requests.
//
// The production implementation uses Postmark. For local development,
// DevSender writes each message to disk as an HTML file plus a JSON
// metadata file instead of sending it.
//
// Message bodies are composed from already-sanitized notification
// payloads; this package does not sanitize content itself.
//
//	sender, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//		return err
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "patient@example.com",
//		Subject:  "Your appointment is confirmed",
//		BodyHTML: body,
//		Tag:      "appointment-confirmed",
//	})
//
// NewChannelSender adapts any EmailSender to the notifications.Sender
// interface so the notification sweeper can deliver over email.
package email
