package schema

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/carebook/carebook/pkg/sanitizer"
	"github.com/carebook/carebook/pkg/validator"
)

// MaxRefundReasonLen bounds the free-text refund justification.
const MaxRefundReasonLen = 500

// RefundRequestInput carries a raw refund request. Amount is a string as
// entered by the user; "₹1,250.50" and "1250.5" are both accepted.
type RefundRequestInput struct {
	BookingID string `json:"bookingId"`
	Amount    string `json:"amount"`
	Reason    string `json:"reason"`
}

// RefundRequest is the accepted refund payload.
type RefundRequest struct {
	BookingID       uuid.UUID
	Amount          float64
	AmountFormatted string // Indian digit grouping, e.g. ₹1,00,000.00
	Reason          string
}

// ParseRefundRequest validates a refund request.
func ParseRefundRequest(in RefundRequestInput) (RefundRequest, error) {
	var errs validator.ValidationErrors

	if err := validator.Apply(
		validID("bookingId", in.BookingID),
		validator.Required("reason", in.Reason),
		validator.MaxLen("reason", in.Reason, MaxRefundReasonLen),
	); err != nil {
		errs = append(errs, validator.ExtractValidationErrors(err)...)
	}

	amountRes := validator.ValidateAmount(in.Amount)
	for _, msg := range amountRes.Errors {
		errs.Add(validator.ValidationError{
			Field:          "amount",
			Message:        msg,
			TranslationKey: "validation.amount",
		})
	}

	if !errs.IsEmpty() {
		return RefundRequest{}, errs
	}

	amount, _ := strconv.ParseFloat(amountRes.Normalized, 64)
	return RefundRequest{
		BookingID:       parseID(in.BookingID),
		Amount:          amount,
		AmountFormatted: amountRes.Formatted,
		Reason:          sanitizer.SanitizeText(in.Reason),
	}, nil
}
