package schema

import (
	"github.com/google/uuid"

	"github.com/carebook/carebook/pkg/sanitizer"
	"github.com/carebook/carebook/pkg/validator"
)

// ReviewSubmissionInput carries a raw doctor review.
type ReviewSubmissionInput struct {
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ReviewSubmission is the accepted review payload. Comment is sanitized
// and bounded; an empty comment is a rating-only review.
type ReviewSubmission struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

// ParseReviewSubmission validates a review against a completed booking.
func ParseReviewSubmission(in ReviewSubmissionInput) (ReviewSubmission, error) {
	if err := validator.Apply(
		validID("bookingId", in.BookingID),
		validator.ValidRating("rating", in.Rating),
	); err != nil {
		return ReviewSubmission{}, err
	}

	return ReviewSubmission{
		BookingID: parseID(in.BookingID),
		Rating:    in.Rating,
		Comment:   sanitizer.SanitizeReviewComment(in.Comment),
	}, nil
}
