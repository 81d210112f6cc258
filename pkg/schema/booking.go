package schema

import (
	"github.com/google/uuid"

	"github.com/carebook/carebook/pkg/sanitizer"
	"github.com/carebook/carebook/pkg/validator"
)

// AppointmentBookingInput carries the raw booking request.
type AppointmentBookingInput struct {
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM, 24-hour
	EndTime   string `json:"endTime"`   // HH:MM, 24-hour
	Note      string `json:"note"`
}

// AppointmentBooking is the accepted booking payload. Note is already
// sanitized and bounded.
type AppointmentBooking struct {
	DoctorID  uuid.UUID
	Date      string
	StartTime string
	EndTime   string
	Note      string
}

// ParseAppointmentBooking validates a booking request. The start<end
// ordering check runs only once both times are individually valid.
func ParseAppointmentBooking(in AppointmentBookingInput) (AppointmentBooking, error) {
	if err := validator.Apply(
		validID("doctorId", in.DoctorID),
		validator.ValidDate("date", in.Date),
		validator.ValidTimeOfDay("startTime", in.StartTime),
		validator.ValidTimeOfDay("endTime", in.EndTime),
	); err != nil {
		return AppointmentBooking{}, err
	}

	start := sanitizer.Trim(in.StartTime)
	end := sanitizer.Trim(in.EndTime)
	if err := validator.Apply(validator.TimeBefore("startTime", start, end)); err != nil {
		return AppointmentBooking{}, err
	}

	return AppointmentBooking{
		DoctorID:  parseID(in.DoctorID),
		Date:      sanitizer.Trim(in.Date),
		StartTime: start,
		EndTime:   end,
		Note:      sanitizer.SanitizeAppointmentNote(in.Note),
	}, nil
}
