package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxAmountINR caps single-transaction amounts accepted by the platform.
const MaxAmountINR = 1000000

var amountRegex = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ValidateAmount validates a monetary amount in INR: positive, at most two
// decimal places, bounded by MaxAmountINR. Normalized is the canonical
// two-decimal form, Formatted uses Indian digit grouping.
func ValidateAmount(raw string) Result {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "₹"))
	if trimmed == "" {
		return invalidResult("Amount is required")
	}
	trimmed = strings.ReplaceAll(trimmed, ",", "")

	if !amountRegex.MatchString(trimmed) {
		return invalidResult("Amount must be a positive number with at most two decimals")
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || value <= 0 {
		return invalidResult("Amount must be greater than zero")
	}
	if value > MaxAmountINR {
		return invalidResult(fmt.Sprintf("Amount must not exceed ₹%s", groupINR(strconv.Itoa(MaxAmountINR))))
	}

	normalized := strconv.FormatFloat(value, 'f', 2, 64)
	return validResult(normalized, FormatINR(value))
}

// FormatINR renders an amount with the Indian grouping scheme:
// the last three digits form one group, the rest group in twos.
func FormatINR(value float64) string {
	canonical := strconv.FormatFloat(value, 'f', 2, 64)
	parts := strings.SplitN(canonical, ".", 2)
	return "₹" + groupINR(parts[0]) + "." + parts[1]
}

func groupINR(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}

// PositiveAmount is the rule form for schema composition.
func PositiveAmount(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return value > 0 && value <= MaxAmountINR
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a positive amount",
			TranslationKey: "validation.positive_amount",
			TranslationValues: map[string]any{
				"field": field,
				"max":   MaxAmountINR,
			},
		},
	}
}

// ValidRating validates a 1-5 integer star rating.
func ValidRating(field string, value int) Rule {
	return Rule{
		Check: func() bool {
			return value >= 1 && value <= 5
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a rating between 1 and 5",
			TranslationKey: "validation.rating",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
