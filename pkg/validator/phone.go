package validator

import (
	"regexp"
	"strings"
)

// CountryCallingCode is the fixed country code for the supported region.
const CountryCallingCode = "91"

// PhoneType classifies a validated phone number.
type PhoneType string

const (
	PhoneMobile   PhoneType = "mobile"
	PhoneLandline PhoneType = "landline"
	PhoneInvalid  PhoneType = "invalid"
)

// PhoneResult extends Result with the mobile/landline classification.
type PhoneResult struct {
	Result
	Type PhoneType
}

var (
	phoneStripRegex = regexp.MustCompile(`[^\d+]`)

	// 10-digit subscriber number starting 6-9.
	mobileSubscriberRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

	// STD trunk numbers: leading 0, then an area code and subscriber number
	// totaling 10-11 digits (e.g. 011-23456789).
	landlineRegex = regexp.MustCompile(`^0\d{9,10}$`)
)

const (
	msgPhoneRequired = "Phone number is required"
	msgPhoneInvalid  = "Please enter a valid mobile number"
)

// ValidatePhone classifies a raw phone string as mobile, landline or invalid.
// Mobile numbers normalize to +91XXXXXXXXXX and format as "+91 XXXXX XXXXX".
// The normalized form round-trips through re-validation as valid.
func ValidatePhone(raw string) PhoneResult {
	// Required check runs before any pattern work.
	if strings.TrimSpace(raw) == "" {
		return PhoneResult{Result: invalidResult(msgPhoneRequired), Type: PhoneInvalid}
	}

	stripped := phoneStripRegex.ReplaceAllString(raw, "")

	if subscriber, ok := mobileSubscriber(stripped); ok {
		normalized := "+" + CountryCallingCode + subscriber
		return PhoneResult{
			Result: validResult(normalized, formatMobile(subscriber)),
			Type:   PhoneMobile,
		}
	}

	digits := strings.TrimPrefix(stripped, "+")
	if landlineRegex.MatchString(digits) {
		return PhoneResult{
			Result: validResult(digits, digits),
			Type:   PhoneLandline,
		}
	}

	return PhoneResult{Result: invalidResult(msgPhoneInvalid), Type: PhoneInvalid}
}

// mobileSubscriber extracts the 10-digit subscriber number from the accepted
// input shapes: bare 10 digits, +91/91 country-code prefix, or a 0 trunk
// prefix. Separating spaces and dashes are already stripped by the caller.
func mobileSubscriber(stripped string) (string, bool) {
	candidate := stripped
	switch {
	case strings.HasPrefix(candidate, "+"+CountryCallingCode):
		candidate = candidate[len(CountryCallingCode)+1:]
	case strings.HasPrefix(candidate, CountryCallingCode) && len(candidate) == 12:
		candidate = candidate[len(CountryCallingCode):]
	case strings.HasPrefix(candidate, "0") && len(candidate) == 11:
		candidate = candidate[1:]
	}

	if mobileSubscriberRegex.MatchString(candidate) {
		return candidate, true
	}
	return "", false
}

func formatMobile(subscriber string) string {
	return "+" + CountryCallingCode + " " + subscriber[:5] + " " + subscriber[5:]
}

// NormalizePhone returns the canonical +91XXXXXXXXXX form of a mobile number,
// or an empty string if the input is not a valid mobile number.
func NormalizePhone(raw string) string {
	res := ValidatePhone(raw)
	if res.Type != PhoneMobile {
		return ""
	}
	return res.Normalized
}

// FormatPhone renders a mobile number in the human-readable "+91 XXXXX XXXXX"
// split. Input that is not a valid mobile number is returned unchanged.
func FormatPhone(raw string) string {
	res := ValidatePhone(raw)
	if res.Type != PhoneMobile {
		return raw
	}
	return res.Formatted
}

// ValidMobileNumber is the rule form of ValidatePhone for schema composition.
func ValidMobileNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ValidatePhone(value).Type == PhoneMobile
		},
		Error: ValidationError{
			Field:          field,
			Message:        msgPhoneInvalid,
			TranslationKey: "validation.mobile_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
