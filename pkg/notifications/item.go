package notifications

import (
	"time"
)

// Channel identifies a delivery channel.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
)

// AllChannels lists every supported channel in resolution order.
var AllChannels = []Channel{ChannelEmail, ChannelSMS, ChannelPush}

// EventType identifies what happened. Each type maps to one preference
// category (appointment, payment, review).
type EventType string

const (
	EventAppointmentConfirmed   EventType = "appointment.confirmed"
	EventAppointmentCancelled   EventType = "appointment.cancelled"
	EventAppointmentRescheduled EventType = "appointment.rescheduled"
	EventPaymentSucceeded       EventType = "payment.succeeded"
	EventPaymentFailed          EventType = "payment.failed"
	EventReviewRequest          EventType = "review.request"
)

// Status is the lifecycle state of a queued item.
//
//	pending -> processing -> sent | failed | cancelled
//	                      -> pending (rescheduled retry)
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSent       Status = "sent"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusSent || s == StatusFailed || s == StatusCancelled
}

// Item is a queued notification delivery.
type Item struct {
	ID           string            `bson:"_id" json:"id"`
	UserID       string            `bson:"user_id" json:"user_id"`
	Type         EventType         `bson:"type" json:"type"`
	Channels     []Channel         `bson:"channels" json:"channels"`
	Status       Status            `bson:"status" json:"status"`
	RetryCount   int               `bson:"retry_count" json:"retry_count"`
	MaxRetries   int               `bson:"max_retries" json:"max_retries"`
	ScheduledFor time.Time         `bson:"scheduled_for" json:"scheduled_for"`
	ProcessingAt *time.Time        `bson:"processing_at,omitempty" json:"processing_at,omitempty"`
	LastError    string            `bson:"last_error,omitempty" json:"last_error,omitempty"`
	Payload      map[string]string `bson:"payload" json:"payload"`
	CreatedAt    time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time         `bson:"updated_at" json:"updated_at"`
}

// Event is a domain occurrence to deliver. Payload is a flat, explicitly
// typed key-value map; construct events with the New*Event helpers so every
// type carries a known key set.
type Event struct {
	UserID   string
	Type     EventType
	Channels []Channel // requested channels; empty means all enabled
	Payload  map[string]string
}

// NewAppointmentConfirmedEvent notifies a patient that a booking was accepted.
func NewAppointmentConfirmedEvent(userID, doctorName, date, startTime string) Event {
	return Event{
		UserID: userID,
		Type:   EventAppointmentConfirmed,
		Payload: map[string]string{
			"doctor_name": doctorName,
			"date":        date,
			"start_time":  startTime,
		},
	}
}

// NewAppointmentCancelledEvent notifies a patient that a booking was cancelled.
func NewAppointmentCancelledEvent(userID, doctorName, date, startTime, reason string) Event {
	return Event{
		UserID: userID,
		Type:   EventAppointmentCancelled,
		Payload: map[string]string{
			"doctor_name": doctorName,
			"date":        date,
			"start_time":  startTime,
			"reason":      reason,
		},
	}
}

// NewAppointmentRescheduledEvent notifies a patient of a moved booking.
func NewAppointmentRescheduledEvent(userID, doctorName, oldDate, oldStart, newDate, newStart string) Event {
	return Event{
		UserID: userID,
		Type:   EventAppointmentRescheduled,
		Payload: map[string]string{
			"doctor_name":    doctorName,
			"old_date":       oldDate,
			"old_start_time": oldStart,
			"new_date":       newDate,
			"new_start_time": newStart,
		},
	}
}

// NewPaymentSucceededEvent confirms a charge. Amount is the display form
// with Indian digit grouping, e.g. "₹1,250.00".
func NewPaymentSucceededEvent(userID, bookingID, amount string) Event {
	return Event{
		UserID: userID,
		Type:   EventPaymentSucceeded,
		Payload: map[string]string{
			"booking_id": bookingID,
			"amount":     amount,
		},
	}
}

// NewPaymentFailedEvent reports a failed charge.
func NewPaymentFailedEvent(userID, bookingID, amount, reason string) Event {
	return Event{
		UserID: userID,
		Type:   EventPaymentFailed,
		Payload: map[string]string{
			"booking_id": bookingID,
			"amount":     amount,
			"reason":     reason,
		},
	}
}

// NewReviewRequestEvent asks a patient to review a completed appointment.
func NewReviewRequestEvent(userID, bookingID, doctorName string) Event {
	return Event{
		UserID: userID,
		Type:   EventReviewRequest,
		Payload: map[string]string{
			"booking_id":  bookingID,
			"doctor_name": doctorName,
		},
	}
}
