package schema

import (
	"strings"

	"github.com/google/uuid"

	"github.com/carebook/carebook/pkg/validator"
)

// GlobalField keys messages that are not attributable to a single input
// field, such as decoding failures surfaced by a transport layer.
const GlobalField = "_global"

// Envelope is the uniform validation outcome handed back to transport
// layers. Exactly one of Data and Errors is meaningful, gated by Success.
type Envelope[T any] struct {
	Success bool                `json:"success"`
	Data    T                   `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Validate runs a payload parser and folds the outcome into an Envelope.
func Validate[In, Out any](parse func(In) (Out, error), input In) Envelope[Out] {
	data, err := parse(input)
	if err != nil {
		return Envelope[Out]{Errors: FieldErrors(err)}
	}
	return Envelope[Out]{Success: true, Data: data}
}

// FieldErrors groups every validation message by field path, preserving
// the order rules were evaluated in. Non-validation errors land under
// GlobalField.
func FieldErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}

	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		return map[string][]string{GlobalField: {err.Error()}}
	}

	grouped := make(map[string][]string, len(verrs))
	for _, ve := range verrs {
		grouped[ve.Field] = append(grouped[ve.Field], ve.Message)
	}
	return grouped
}

// Flatten reduces an error to one message per field for form display.
// The first message reported for a field wins.
func Flatten(err error) map[string]string {
	if err == nil {
		return nil
	}

	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		return map[string]string{GlobalField: err.Error()}
	}

	flat := make(map[string]string, len(verrs))
	for _, ve := range verrs {
		if _, ok := flat[ve.Field]; !ok {
			flat[ve.Field] = ve.Message
		}
	}
	return flat
}

// validID validates an opaque resource identifier (doctor, booking, user).
// Identifiers are UUIDs throughout the platform.
func validID(field, value string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			_, err := uuid.Parse(strings.TrimSpace(value))
			return err == nil
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        "must be a valid identifier",
			TranslationKey: "validation.uuid",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func parseID(value string) uuid.UUID {
	id, _ := uuid.Parse(strings.TrimSpace(value))
	return id
}
