package notifications

import (
	"context"
)

// Sender delivers one item over one channel. Content in the item payload
// is already sanitized; senders only format and transmit.
type Sender interface {
	// Channel identifies which channel this sender serves.
	Channel() Channel

	// Send delivers the item. A returned error is treated as transient
	// and retried against the item's retry budget.
	Send(ctx context.Context, item Item) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc struct {
	Ch Channel
	Fn func(ctx context.Context, item Item) error
}

func (s SenderFunc) Channel() Channel { return s.Ch }

func (s SenderFunc) Send(ctx context.Context, item Item) error {
	return s.Fn(ctx, item)
}

// senderSet indexes senders by channel.
type senderSet map[Channel]Sender

func newSenderSet(senders []Sender) senderSet {
	set := make(senderSet, len(senders))
	for _, s := range senders {
		if s != nil {
			set[s.Channel()] = s
		}
	}
	return set
}
