package audit

import "errors"

var (
	// ErrStorageNotAvailable indicates the storage backend is unavailable.
	ErrStorageNotAvailable = errors.New("audit storage is unavailable")

	// ErrEventValidation indicates event validation failed.
	ErrEventValidation = errors.New("audit event validation failed")

	// ErrDuplicateEvent indicates an event with the same ID already exists.
	ErrDuplicateEvent = errors.New("audit event already exists")
)
