package sanitizer

import (
	"html"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// decodePasses bounds the entity-decode/strip loop. Each pass handles one
// level of entity encoding, so nested encodings like &amp;lt;script&amp;gt;
// cannot smuggle markup past the stripping step.
const decodePasses = 5

// Sanitize cleans free-text input according to the given policy.
// The processing order is fixed: NFC normalisation, HTML entity decoding,
// markup stripping, whitespace collapsing, truncation. Decode and strip
// repeat until the text is stable so that re-sanitizing is a no-op.
func Sanitize(s string, policy Policy) string {
	if s == "" {
		return ""
	}

	s = norm.NFC.String(s)

	for range decodePasses {
		prev := s
		s = html.UnescapeString(s)
		s = stripMarkup(s, policy)
		if s == prev {
			break
		}
	}

	s = whitespaceRegex.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	return truncate(s, policy.maxLength())
}

// SanitizeText cleans general free text with the strict policy and the
// default 10k ceiling.
func SanitizeText(s string) string {
	return Sanitize(s, Strict)
}

// SanitizeReviewComment cleans a review comment, 1000 chars max.
func SanitizeReviewComment(s string) string {
	return Sanitize(s, Strict.WithMaxLength(MaxReviewCommentLength))
}

// SanitizeAppointmentNote cleans an appointment note, 500 chars max.
func SanitizeAppointmentNote(s string) string {
	return Sanitize(s, Strict.WithMaxLength(MaxAppointmentNoteLength))
}

// SanitizeSearchQuery cleans a search query, 100 chars max.
func SanitizeSearchQuery(s string) string {
	return Sanitize(s, Strict.WithMaxLength(MaxSearchQueryLength))
}

// stripMarkup removes tags per policy. Script and style blocks lose their
// content entirely; other dropped tags keep their inner text.
func stripMarkup(s string, policy Policy) string {
	s = scriptBlockRegex.ReplaceAllString(s, "")
	s = styleBlockRegex.ReplaceAllString(s, "")

	// A tag opened but never closed is still a tag to a lenient parser.
	s = unclosedTagRegex.ReplaceAllString(s, "")

	if !policy.AllowInlineTags {
		return htmlTagRegex.ReplaceAllString(s, "")
	}

	return htmlTagRegex.ReplaceAllStringFunc(s, func(tag string) string {
		if allowedTagRegex.MatchString(tag) {
			return tag
		}
		return ""
	})
}

// truncate slices to maxLen runes. Unicode-safe; never an error.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// NormalizeWhitespace collapses whitespace runs to single spaces and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SingleLine converts a multi-line string to a single trimmed line.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return NormalizeWhitespace(s)
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower trims and lowercases, the standard cleanup for identifiers
// and email addresses coming from forms.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MaxLength truncates a string to maxLen runes.
func MaxLength(s string, maxLen int) string {
	return truncate(s, maxLen)
}
