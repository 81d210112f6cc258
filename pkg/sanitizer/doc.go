// Package sanitizer cleans free-text input before it is stored or displayed:
// patient names, appointment notes, review comments, search queries and any
// other string that originates from a form field.
//
// The package is completely stateless and fail-safe: no function returns an
// error or panics. Hostile or malformed input is reduced to safe text, worst
// case an empty string. Callers must not wrap sanitizer calls defensively.
//
// Text passes through a fixed pipeline (see Sanitize): Unicode NFC
// normalisation, HTML entity decoding, markup stripping according to the
// active Policy, whitespace collapsing and a hard length ceiling. The entity
// decoding step exists specifically so that encoded markup such as
// &lt;script&gt; is caught by the stripping step instead of slipping through.
//
// Two policies are provided: Strict removes every tag and is the default for
// persisted content; Basic keeps a small inline-formatting allowlist for
// fields that render limited rich text.
//
// ContainsXSSPatterns is an advisory detector for logging and alerting. It is
// not an enforcement path - sanitization is.
package sanitizer
