package validator

import (
	"regexp"
	"strings"
)

// pinRegex: exactly 6 digits, leading zero invalid.
var pinRegex = regexp.MustCompile(`^[1-9]\d{5}$`)

// pinRegionsByFirstDigit is the heuristic postal-circle mapping used for the
// advisory region cross-check. First digit only, best effort - mismatches are
// warnings, never errors.
var pinRegionsByFirstDigit = map[byte][]string{
	'1': {"Delhi", "Haryana", "Punjab", "Himachal Pradesh", "Jammu and Kashmir", "Ladakh", "Chandigarh"},
	'2': {"Uttar Pradesh", "Uttarakhand"},
	'3': {"Rajasthan", "Gujarat", "Dadra and Nagar Haveli and Daman and Diu"},
	'4': {"Maharashtra", "Goa", "Madhya Pradesh", "Chhattisgarh"},
	'5': {"Telangana", "Andhra Pradesh", "Karnataka"},
	'6': {"Tamil Nadu", "Kerala", "Puducherry", "Lakshadweep"},
	'7': {"West Bengal", "Odisha", "Assam", "Sikkim", "Arunachal Pradesh", "Nagaland", "Manipur", "Mizoram", "Tripura", "Meghalaya", "Andaman and Nicobar Islands"},
	'8': {"Bihar", "Jharkhand"},
	'9': {"Army Postal Service"},
}

const (
	msgPINRequired    = "PIN code is required"
	msgPINFormat      = "PIN code must be exactly 6 digits"
	msgPINLeadingZero = "PIN code cannot start with 0"

	warnPINRepeatedDigits = "PIN code has all identical digits"
	warnPINRegionMismatch = "PIN code does not appear to belong to the selected state"
)

// ValidatePINCode validates a 6-digit postal code.
// All-identical-digit inputs stay valid but carry a warning.
func ValidatePINCode(raw string) Result {
	return ValidatePINCodeForState(raw, "")
}

// ValidatePINCodeForState additionally cross-checks the PIN prefix against a
// caller-supplied state. A mismatch produces a warning, not an error - the
// record stays valid.
func ValidatePINCodeForState(raw, state string) Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return invalidResult(msgPINRequired)
	}

	if strings.HasPrefix(trimmed, "0") && len(trimmed) == 6 && isAllDigits(trimmed) {
		return invalidResult(msgPINLeadingZero)
	}
	if !pinRegex.MatchString(trimmed) {
		return invalidResult(msgPINFormat)
	}

	var warnings []string
	if allSameDigit(trimmed) {
		warnings = append(warnings, warnPINRepeatedDigits)
	}
	if state != "" && !pinMatchesState(trimmed, state) {
		warnings = append(warnings, warnPINRegionMismatch)
	}

	return validResult(trimmed, trimmed[:3]+" "+trimmed[3:], warnings...)
}

// ExpectedRegionsForPIN returns the postal-circle region names the PIN prefix
// maps to. Empty for malformed input.
func ExpectedRegionsForPIN(pin string) []string {
	pin = strings.TrimSpace(pin)
	if len(pin) == 0 {
		return nil
	}
	return pinRegionsByFirstDigit[pin[0]]
}

func pinMatchesState(pin, state string) bool {
	for _, region := range ExpectedRegionsForPIN(pin) {
		if strings.EqualFold(region, strings.TrimSpace(state)) {
			return true
		}
	}
	return false
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return len(s) > 0
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// ValidPINCode is the rule form of ValidatePINCode for schema composition.
func ValidPINCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ValidatePINCode(value).Valid
		},
		Error: ValidationError{
			Field:          field,
			Message:        msgPINFormat,
			TranslationKey: "validation.pin_code",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
