package validator

import (
	"fmt"
	"strings"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// OneOf validates membership in a fixed choice set, case-insensitively.
func OneOf(field, value string, choices ...string) Rule {
	return Rule{
		Check: func() bool {
			for _, choice := range choices {
				if strings.EqualFold(strings.TrimSpace(value), choice) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(choices, ", ")),
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"choices": choices,
			},
		},
	}
}

// EqualStrings validates a cross-field match (e.g. password confirmation).
// Reported against the confirmation field path.
func EqualStrings(field, value, other, otherLabel string) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s", otherLabel),
			TranslationKey: "validation.equal",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherLabel,
			},
		},
	}
}
