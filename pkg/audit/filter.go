package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// FilterAction defines what happens to a matched field.
type FilterAction string

const (
	FilterActionRemove FilterAction = "remove"
	FilterActionHash   FilterAction = "hash"
	FilterActionMask   FilterAction = "mask"
)

// FilterRule defines how to filter a specific field.
type FilterRule struct {
	Action FilterAction
}

// MetadataFilter scrubs sensitive data from audit event metadata and
// snapshots. Fields match by lowercased name or wildcard pattern.
type MetadataFilter struct {
	customFilters map[string]FilterRule
	allowedFields map[string]bool
	filterPII     bool
}

// Fields filtered automatically. Credentials are removed outright; identity
// documents and payment details are masked so records stay correlatable;
// contact details are hashed so the same value hashes the same across events.
var defaultPIIFields = map[string]FilterRule{
	"password":       {Action: FilterActionRemove},
	"pwd":            {Action: FilterActionRemove},
	"secret":         {Action: FilterActionRemove},
	"token":          {Action: FilterActionRemove},
	"api_key":        {Action: FilterActionRemove},
	"access_token":   {Action: FilterActionRemove},
	"refresh_token":  {Action: FilterActionRemove},
	"otp":            {Action: FilterActionRemove},
	"aadhaar":        {Action: FilterActionMask},
	"aadhaar_number": {Action: FilterActionMask},
	"pan":            {Action: FilterActionMask},
	"pan_number":     {Action: FilterActionMask},
	"credit_card":    {Action: FilterActionMask},
	"card_number":    {Action: FilterActionMask},
	"upi_id":         {Action: FilterActionMask},
	"cvv":            {Action: FilterActionRemove},
	"email":          {Action: FilterActionHash},
	"phone":          {Action: FilterActionMask},
	"phone_number":   {Action: FilterActionMask},
	"mobile":         {Action: FilterActionMask},
	"date_of_birth":  {Action: FilterActionHash},
	"dob":            {Action: FilterActionHash},
	"diagnosis":      {Action: FilterActionRemove},
	"prescription":   {Action: FilterActionRemove},
	"medical_notes":  {Action: FilterActionRemove},
}

// FilterOption configures MetadataFilter behavior.
type FilterOption func(*MetadataFilter)

// NewMetadataFilter creates a filter with default PII filtering enabled.
func NewMetadataFilter(opts ...FilterOption) *MetadataFilter {
	f := &MetadataFilter{
		customFilters: make(map[string]FilterRule),
		allowedFields: make(map[string]bool),
		filterPII:     true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// WithCustomField adds a custom field rule. The field may be a wildcard
// pattern: "*.token", "internal.*" or "*secret*".
func WithCustomField(field string, action FilterAction) FilterOption {
	return func(f *MetadataFilter) {
		f.customFilters[strings.ToLower(field)] = FilterRule{Action: action}
	}
}

// WithAllowedField lets a field pass through unfiltered even when a default
// or custom rule would match it.
func WithAllowedField(field string) FilterOption {
	return func(f *MetadataFilter) {
		f.allowedFields[strings.ToLower(field)] = true
	}
}

// WithoutPIIDefaults disables the built-in PII field rules.
func WithoutPIIDefaults() FilterOption {
	return func(f *MetadataFilter) {
		f.filterPII = false
	}
}

// Filter applies the rules to a metadata or snapshot map. The input is not
// modified; a nil input returns nil.
func (f *MetadataFilter) Filter(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}

	filtered := make(map[string]any)

	for key, value := range fields {
		lowerKey := strings.ToLower(key)

		if f.allowedFields[lowerKey] {
			filtered[key] = value
			continue
		}

		if rule, ok := f.customFilters[lowerKey]; ok {
			if result := f.applyRule(rule, value); result != nil {
				filtered[key] = result
			}
			continue
		}

		if rule := f.matchWildcard(lowerKey, f.customFilters); rule != nil {
			if result := f.applyRule(*rule, value); result != nil {
				filtered[key] = result
			}
			continue
		}

		if f.filterPII {
			if rule, ok := defaultPIIFields[lowerKey]; ok {
				if result := f.applyRule(rule, value); result != nil {
					filtered[key] = result
				}
				continue
			}

			if rule := f.matchWildcard(lowerKey, defaultPIIFields); rule != nil {
				if result := f.applyRule(*rule, value); result != nil {
					filtered[key] = result
				}
				continue
			}
		}

		filtered[key] = value
	}

	return filtered
}

func (f *MetadataFilter) matchWildcard(key string, rules map[string]FilterRule) *FilterRule {
	for pattern, rule := range rules {
		if strings.Contains(pattern, "*") {
			if matchesPattern(key, pattern) {
				return &rule
			}
		}
	}
	return nil
}

// matchesPattern supports *.suffix, prefix.* and *contains* patterns.
func matchesPattern(key, pattern string) bool {
	pattern = strings.ToLower(pattern)

	if strings.HasPrefix(pattern, "*.") {
		return strings.HasSuffix(key, pattern[2:])
	}

	if strings.HasSuffix(pattern, ".*") {
		return strings.HasPrefix(key, pattern[:len(pattern)-2])
	}

	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		return strings.Contains(key, pattern[1:len(pattern)-1])
	}

	return false
}

func (f *MetadataFilter) applyRule(rule FilterRule, value any) any {
	switch rule.Action {
	case FilterActionRemove:
		return nil
	case FilterActionHash:
		return f.hashValue(value)
	case FilterActionMask:
		return f.maskValue(value)
	default:
		return value
	}
}

func (f *MetadataFilter) hashValue(value any) string {
	str := fmt.Sprintf("%v", value)
	hash := sha256.Sum256([]byte(str))
	return hex.EncodeToString(hash[:])
}

// maskValue hides the middle of the value, keeping enough of the edges to
// recognize it: "9876543210" becomes "98******10".
func (f *MetadataFilter) maskValue(value any) string {
	str := fmt.Sprintf("%v", value)
	length := len(str)

	if length <= 4 {
		return strings.Repeat("*", length)
	}

	if length <= 8 {
		return str[:1] + strings.Repeat("*", length-2) + str[length-1:]
	}

	return str[:2] + strings.Repeat("*", length-4) + str[length-2:]
}
