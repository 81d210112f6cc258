package validator

import (
	"regexp"
	"strings"
)

// Address is the structured postal address persisted with patient and
// provider profiles. Line2 and Landmark are optional.
type Address struct {
	Line1    string
	Line2    string
	Landmark string
	City     string
	District string
	State    string
	PINCode  string
	Country  string
}

const MaxAddressLineLen = 100

var cityRegex = regexp.MustCompile(`^[A-Za-z\s\-'.]+$`)

// indianStates is the fixed enumerable set of accepted region names
// (states and union territories).
var indianStates = map[string]bool{
	"andhra pradesh": true, "arunachal pradesh": true, "assam": true,
	"bihar": true, "chhattisgarh": true, "goa": true, "gujarat": true,
	"haryana": true, "himachal pradesh": true, "jharkhand": true,
	"karnataka": true, "kerala": true, "madhya pradesh": true,
	"maharashtra": true, "manipur": true, "meghalaya": true, "mizoram": true,
	"nagaland": true, "odisha": true, "punjab": true, "rajasthan": true,
	"sikkim": true, "tamil nadu": true, "telangana": true, "tripura": true,
	"uttar pradesh": true, "uttarakhand": true, "west bengal": true,
	"andaman and nicobar islands": true, "chandigarh": true,
	"dadra and nagar haveli and daman and diu": true, "delhi": true,
	"jammu and kashmir": true, "ladakh": true, "lakshadweep": true,
	"puducherry": true,
}

// IsIndianState reports whether the value belongs to the accepted
// state/union-territory set. Comparison is case-insensitive.
func IsIndianState(state string) bool {
	return indianStates[strings.ToLower(strings.TrimSpace(state))]
}

// ValidateAddress validates each component independently and then performs
// one soft cross-field check (PIN prefix vs state). Errors and warnings from
// all components are unioned; the aggregate is valid iff the error list is
// empty - warnings never flip validity.
func ValidateAddress(addr Address) Result {
	var errs, warnings []string

	line1 := strings.TrimSpace(addr.Line1)
	switch {
	case line1 == "":
		errs = append(errs, "Address line 1 is required")
	case len(line1) > MaxAddressLineLen:
		errs = append(errs, "Address line 1 is too long")
	}
	if len(strings.TrimSpace(addr.Line2)) > MaxAddressLineLen {
		errs = append(errs, "Address line 2 is too long")
	}

	city := strings.TrimSpace(addr.City)
	switch {
	case city == "":
		errs = append(errs, "City is required")
	case !cityRegex.MatchString(city):
		errs = append(errs, "City may only contain letters")
	}

	state := strings.TrimSpace(addr.State)
	if state == "" {
		errs = append(errs, "State is required")
	} else if !IsIndianState(state) {
		errs = append(errs, "State is not recognized")
	}

	pinRes := ValidatePINCode(addr.PINCode)
	errs = append(errs, pinRes.Errors...)
	warnings = append(warnings, pinRes.Warnings...)

	// Single soft cross-field check: PIN prefix should statistically
	// correspond to the state. Advisory only.
	if pinRes.Valid && state != "" && IsIndianState(state) && !pinMatchesState(pinRes.Normalized, state) {
		warnings = append(warnings, warnPINRegionMismatch)
	}

	if len(errs) > 0 {
		return Result{Errors: errs, Warnings: warnings}
	}

	normalized := NormalizeWhitespaceInName(line1 + ", " + city + ", " + state + " " + pinRes.Normalized)
	return validResult(normalized, normalized, warnings...)
}
