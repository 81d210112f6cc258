package sanitizer

import (
	"strings"
	"unicode"
)

// ContainsXSSPatterns reports whether the input carries markup commonly used
// for script injection: <script> blocks, javascript:/vbscript: URLs, inline
// event-handler attributes and CSS expression()/url(javascript:) payloads.
//
// This is an advisory signal for logging and alerting only. Sanitize is the
// enforcement path; content flagged here has already been neutralised by it.
func ContainsXSSPatterns(s string) bool {
	if s == "" {
		return false
	}
	return scriptOpenRegex.MatchString(s) ||
		scriptProtoRegex.MatchString(s) ||
		eventHandlerRegex.MatchString(s) ||
		cssExprRegex.MatchString(s) ||
		cssURLJSRegex.MatchString(s)
}

// SanitizeURL accepts only http, https and data:image/* URLs.
// Any other scheme, including javascript:, vbscript: and data:text/html,
// returns an empty string.
func SanitizeURL(rawURL string) string {
	s := strings.TrimSpace(rawURL)
	if s == "" {
		return ""
	}

	// Scheme checks run against a copy with embedded whitespace and control
	// characters removed, so "java\tscript:" cannot sneak past the prefix test.
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	lower := strings.ToLower(compact)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
	case strings.HasPrefix(lower, "data:image/"):
	default:
		return ""
	}

	compact = strings.ReplaceAll(compact, "<", "")
	compact = strings.ReplaceAll(compact, ">", "")
	compact = strings.ReplaceAll(compact, `"`, "")

	return compact
}

// SanitizeFilename makes a filename safe independent of OS: path traversal
// sequences are removed, illegal characters replaced, length bounded to 255
// bytes and the result is never empty.
func SanitizeFilename(filename string) string {
	safe := pathTraversalRegex.ReplaceAllString(filename, "")
	safe = strings.ReplaceAll(safe, "..", "")
	safe = unsafeFilenameRegex.ReplaceAllString(safe, "_")
	safe = strings.Trim(safe, " .")

	if len(safe) > 255 {
		safe = safe[:255]
	}
	if safe == "" {
		safe = "file"
	}
	return safe
}

// RemoveControlChars strips control characters, keeping common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}
