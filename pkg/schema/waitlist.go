package schema

import (
	"github.com/google/uuid"

	"github.com/carebook/carebook/pkg/sanitizer"
	"github.com/carebook/carebook/pkg/validator"
)

// WaitlistEntryInput carries a raw waitlist request for a fully booked
// doctor and day.
type WaitlistEntryInput struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"` // YYYY-MM-DD
	TimeFrom string `json:"timeFrom"`
	TimeTo   string `json:"timeTo"`
	Phone    string `json:"phone"` // contacted when a slot frees up
}

// WaitlistEntry is the accepted waitlist payload.
type WaitlistEntry struct {
	DoctorID uuid.UUID
	Date     string
	TimeFrom string
	TimeTo   string
	Phone    string // canonical +91XXXXXXXXXX
}

// ParseWaitlistEntry validates a waitlist request. The preferred window
// ordering check runs only once both times are individually valid.
func ParseWaitlistEntry(in WaitlistEntryInput) (WaitlistEntry, error) {
	if err := validator.Apply(
		validID("doctorId", in.DoctorID),
		validator.ValidDate("date", in.Date),
		validator.ValidTimeOfDay("timeFrom", in.TimeFrom),
		validator.ValidTimeOfDay("timeTo", in.TimeTo),
		validator.ValidMobileNumber("phone", in.Phone),
	); err != nil {
		return WaitlistEntry{}, err
	}

	from := sanitizer.Trim(in.TimeFrom)
	to := sanitizer.Trim(in.TimeTo)
	if err := validator.Apply(validator.TimeBefore("timeFrom", from, to)); err != nil {
		return WaitlistEntry{}, err
	}

	return WaitlistEntry{
		DoctorID: parseID(in.DoctorID),
		Date:     sanitizer.Trim(in.Date),
		TimeFrom: from,
		TimeTo:   to,
		Phone:    validator.NormalizePhone(in.Phone),
	}, nil
}
