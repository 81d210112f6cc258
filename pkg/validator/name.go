package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// namePartRegex is the allowed character class for every name part:
// letters, spaces, hyphens and apostrophes.
var namePartRegex = regexp.MustCompile(`^[A-Za-z\s\-']+$`)

// Per-part length bounds.
const (
	MinFirstNameLen = 2
	MinLastNameLen  = 1
	MaxNamePartLen  = 50
)

// nameTitles is the accepted honorific set.
var nameTitles = map[string]bool{
	"mr":     true,
	"mrs":    true,
	"ms":     true,
	"dr":     true,
	"master": true,
	"baby":   true,
}

// commonGivenNames backs the advisory uncommon-name check. Curated, not
// exhaustive - absence from the list is a warning, never an error.
var commonGivenNames = map[string]bool{
	"aarav": true, "aditya": true, "akash": true, "amit": true, "ananya": true,
	"anil": true, "anita": true, "anjali": true, "ankit": true, "arjun": true,
	"asha": true, "deepak": true, "divya": true, "gaurav": true, "isha": true,
	"kavita": true, "kiran": true, "krishna": true, "lakshmi": true, "manish": true,
	"meera": true, "mohan": true, "neha": true, "nikhil": true, "pooja": true,
	"priya": true, "rahul": true, "raj": true, "rajesh": true, "rakesh": true,
	"ramesh": true, "ravi": true, "riya": true, "rohan": true, "sanjay": true,
	"shreya": true, "sneha": true, "sunita": true, "suresh": true, "vijay": true,
	"vikram": true, "vinod": true, "john": true, "mary": true, "david": true,
	"sarah": true, "michael": true, "priyanka": true, "sachin": true, "tanvi": true,
}

// NameParts is a structured person name. Title, MiddleName and PreferredName
// are optional.
type NameParts struct {
	Title         string
	FirstName     string
	MiddleName    string
	LastName      string
	PreferredName string
}

// ValidateName checks every populated part against the allowed character
// class and its length bounds. Violations are collected, not short-circuited,
// so the caller can report all problems in one pass. An uncommon first name
// adds a warning without affecting validity.
func ValidateName(parts NameParts) Result {
	var errs, warnings []string

	first := strings.TrimSpace(parts.FirstName)
	last := strings.TrimSpace(parts.LastName)

	errs = append(errs, checkNamePart("First name", first, MinFirstNameLen, true)...)
	errs = append(errs, checkNamePart("Last name", last, MinLastNameLen, true)...)
	errs = append(errs, checkNamePart("Middle name", strings.TrimSpace(parts.MiddleName), 1, false)...)
	errs = append(errs, checkNamePart("Preferred name", strings.TrimSpace(parts.PreferredName), 1, false)...)

	if title := strings.TrimSpace(parts.Title); title != "" {
		if !nameTitles[strings.ToLower(strings.TrimSuffix(title, "."))] {
			errs = append(errs, "Title is not recognized")
		}
	}

	if len(errs) > 0 {
		return invalidResult(errs...)
	}

	if !commonGivenNames[strings.ToLower(first)] {
		warnings = append(warnings, "First name is uncommon; please double-check the spelling")
	}

	normalized := NormalizeWhitespaceInName(first + " " + last)
	return validResult(normalized, normalized, warnings...)
}

// checkNamePart returns one error per violation for a single part.
func checkNamePart(label, value string, minLen int, required bool) []string {
	if value == "" {
		if required {
			return []string{label + " is required"}
		}
		return nil
	}

	var errs []string
	if !namePartRegex.MatchString(value) {
		errs = append(errs, label+" may only contain letters, spaces, hyphens and apostrophes")
	}
	if len(value) < minLen {
		errs = append(errs, fmt.Sprintf("%s must be at least %d characters long", label, minLen))
	}
	if len(value) > MaxNamePartLen {
		errs = append(errs, fmt.Sprintf("%s must be at most %d characters long", label, MaxNamePartLen))
	}
	return errs
}

// NormalizeWhitespaceInName collapses internal whitespace and trims.
func NormalizeWhitespaceInName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ValidNamePart is the rule form of the per-part check for schema composition.
func ValidNamePart(field, value string, minLen int) Rule {
	return Rule{
		Check: func() bool {
			trimmed := strings.TrimSpace(value)
			return len(trimmed) >= minLen &&
				len(trimmed) <= MaxNamePartLen &&
				namePartRegex.MatchString(trimmed)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "may only contain letters, spaces, hyphens and apostrophes",
			TranslationKey: "validation.name_part",
			TranslationValues: map[string]any{
				"field": field,
				"min":   minLen,
			},
		},
	}
}
