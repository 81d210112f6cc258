package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
)

var (
	// 24-hour clock, rejects hour > 23 and minute > 59.
	timeOfDayRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidEmail validates that a string is a valid email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			trimmed := strings.TrimSpace(value)
			if trimmed == "" {
				return false
			}

			addr, err := mail.ParseAddress(trimmed)
			if err != nil || addr.Address != trimmed {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 {
				return false
			}

			// Domain must contain a dot and no empty labels for typical web use.
			domain := parts[1]
			if !strings.Contains(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidTimeOfDay validates a 24-hour "HH:MM" string.
func ValidTimeOfDay(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return timeOfDayRegex.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a time in 24-hour HH:MM format",
			TranslationKey: "validation.time_of_day",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// IsTimeOfDay reports whether the value is a valid 24-hour "HH:MM" string.
func IsTimeOfDay(value string) bool {
	return timeOfDayRegex.MatchString(strings.TrimSpace(value))
}

// ValidDate validates a calendar date in YYYY-MM-DD form.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := time.Parse("2006-01-02", strings.TrimSpace(value))
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a date in YYYY-MM-DD format",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// TimeBefore validates that one HH:MM time of day precedes another.
// Both values must already satisfy ValidTimeOfDay.
func TimeBefore(field, start, end string) Rule {
	return Rule{
		Check: func() bool {
			return IsTimeOfDay(start) && IsTimeOfDay(end) && start < end
		},
		Error: ValidationError{
			Field:          field,
			Message:        "start time must be before end time",
			TranslationKey: "validation.time_order",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
