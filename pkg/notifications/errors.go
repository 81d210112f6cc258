package notifications

import "errors"

var (
	// ErrItemNotFound is returned when a notification item does not exist.
	ErrItemNotFound = errors.New("notification item not found")

	// ErrInvalidTransition is returned when a status change violates the
	// item lifecycle (e.g. marking a cancelled item sent).
	ErrInvalidTransition = errors.New("invalid notification status transition")

	// ErrStorageNil is returned when a component is constructed without storage.
	ErrStorageNil = errors.New("storage is nil")

	// ErrNoSenders is returned when a sweeper is started without any
	// channel senders registered.
	ErrNoSenders = errors.New("no channel senders registered")

	// ErrSenderNotFound is returned when an item requests a channel that
	// has no registered sender.
	ErrSenderNotFound = errors.New("no sender registered for channel")
)
