package sanitizer

// Policy controls which markup, if any, survives text cleaning.
// Policies are immutable presets consumed by Sanitize.
type Policy struct {
	// AllowInlineTags keeps a small inline-formatting allowlist
	// (b, i, em, strong, u, br) instead of stripping every tag.
	AllowInlineTags bool

	// MaxLength is the hard length ceiling applied after cleaning.
	// Zero means MaxTextLength.
	MaxLength int
}

// Field-specific length ceilings. Truncation is a hard slice, not an error.
const (
	MaxTextLength            = 10000
	MaxReviewCommentLength   = 1000
	MaxAppointmentNoteLength = 500
	MaxSearchQueryLength     = 100
)

// Strict removes all markup, keeping inner text. Default for persisted content.
var Strict = Policy{}

// Basic keeps the inline-formatting allowlist and drops everything else,
// still keeping the inner text of dropped tags.
var Basic = Policy{AllowInlineTags: true}

// WithMaxLength returns a copy of the policy with a different length ceiling.
func (p Policy) WithMaxLength(max int) Policy {
	p.MaxLength = max
	return p
}

func (p Policy) maxLength() int {
	if p.MaxLength <= 0 {
		return MaxTextLength
	}
	return p.MaxLength
}
