package schema

import (
	"github.com/google/uuid"

	"github.com/carebook/carebook/pkg/sanitizer"
	"github.com/carebook/carebook/pkg/validator"
)

// Confirmation phrases typed by the user to authorize irreversible
// data-subject requests. Comparison is exact after trimming.
const (
	ExportConfirmationPhrase = "EXPORT MY DATA"
	DeleteConfirmationPhrase = "DELETE MY ACCOUNT"
)

// Accepted export formats.
const (
	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
)

// DataExportRequestInput carries a raw data-subject export request.
type DataExportRequestInput struct {
	UserID       string `json:"userId"`
	Confirmation string `json:"confirmation"`
	Format       string `json:"format"`
}

// DataExportRequest is the accepted export payload.
type DataExportRequest struct {
	UserID uuid.UUID
	Format string
}

// ParseDataExportRequest validates a data export request. Format defaults
// to JSON when omitted.
func ParseDataExportRequest(in DataExportRequestInput) (DataExportRequest, error) {
	format := sanitizer.TrimToLower(in.Format)
	if format == "" {
		format = ExportFormatJSON
	}

	if err := validator.Apply(
		validID("userId", in.UserID),
		confirmationPhrase("confirmation", in.Confirmation, ExportConfirmationPhrase),
		validator.OneOf("format", format, ExportFormatJSON, ExportFormatCSV),
	); err != nil {
		return DataExportRequest{}, err
	}

	return DataExportRequest{
		UserID: parseID(in.UserID),
		Format: format,
	}, nil
}

// DataDeleteRequestInput carries a raw account deletion request.
type DataDeleteRequestInput struct {
	UserID       string `json:"userId"`
	Confirmation string `json:"confirmation"`
	Reason       string `json:"reason"`
}

// DataDeleteRequest is the accepted deletion payload. Reason is optional
// feedback, sanitized before storage.
type DataDeleteRequest struct {
	UserID uuid.UUID
	Reason string
}

// ParseDataDeleteRequest validates an account deletion request.
func ParseDataDeleteRequest(in DataDeleteRequestInput) (DataDeleteRequest, error) {
	if err := validator.Apply(
		validID("userId", in.UserID),
		confirmationPhrase("confirmation", in.Confirmation, DeleteConfirmationPhrase),
	); err != nil {
		return DataDeleteRequest{}, err
	}

	return DataDeleteRequest{
		UserID: parseID(in.UserID),
		Reason: sanitizer.SanitizeText(in.Reason),
	}, nil
}

// confirmationPhrase requires the user to type an exact phrase. Case
// matters; the friction is the point.
func confirmationPhrase(field, value, phrase string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return sanitizer.Trim(value) == phrase
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        "type " + phrase + " to confirm",
			TranslationKey: "validation.confirmation_phrase",
			TranslationValues: map[string]any{
				"field":  field,
				"phrase": phrase,
			},
		},
	}
}
