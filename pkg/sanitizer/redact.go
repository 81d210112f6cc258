package sanitizer

import "strings"

// RedactedMarker replaces sensitive values in log output.
const RedactedMarker = "[REDACTED]"

// sensitiveFieldNames is matched case-insensitively as a substring against
// field names, so "userPassword" and "card_number" are both caught.
var sensitiveFieldNames = []string{
	"password",
	"token",
	"secret",
	"apikey",
	"cookie",
	"session",
	"cardnumber",
	"cvv",
	"ssn",
	"authorization",
}

// IsSensitiveFieldName reports whether a field name refers to a credential or
// other value that must never reach logs.
func IsSensitiveFieldName(name string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(name, "_", ""), "-", ""))
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(normalized, sensitive) {
			return true
		}
	}
	return false
}

// RedactForLog prepares a record for structured logging: values under
// sensitive field names are replaced wholesale with RedactedMarker, other
// string values are sanitized with the strict policy, and nested records are
// processed recursively up to DefaultMaxDepth.
func RedactForLog(record map[string]any) map[string]any {
	return redactValue(record, 0)
}

func redactValue(record map[string]any, depth int) map[string]any {
	if record == nil {
		return nil
	}
	if depth > DefaultMaxDepth {
		return map[string]any{}
	}

	result := make(map[string]any, len(record))
	for key, value := range record {
		if IsSensitiveFieldName(key) {
			result[key] = RedactedMarker
			continue
		}
		switch v := value.(type) {
		case string:
			result[key] = SanitizeText(v)
		case map[string]any:
			result[key] = redactValue(v, depth+1)
		default:
			result[key] = value
		}
	}
	return result
}
