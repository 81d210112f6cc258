package validator

import (
	"strings"
	"unicode"
)

// MinPasswordLen is the platform-wide password length floor.
const MinPasswordLen = 8

// commonPasswords is a curated list of frequently compromised passwords.
var commonPasswords = map[string]bool{
	"password":   true,
	"password1":  true,
	"password12": true,
	"passw0rd":   true,
	"12345678":   true,
	"123456789":  true,
	"1234567890": true,
	"qwerty123":  true,
	"qwertyuiop": true,
	"letmein":    true,
	"welcome1":   true,
	"admin123":   true,
	"iloveyou":   true,
	"sunshine":   true,
	"abcd1234":   true,
}

// ContainsUppercase validates that a string contains at least one uppercase letter.
func ContainsUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, char := range value {
				if unicode.IsUpper(char) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one uppercase letter",
			TranslationKey: "validation.contains_uppercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ContainsLowercase validates that a string contains at least one lowercase letter.
func ContainsLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, char := range value {
				if unicode.IsLower(char) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one lowercase letter",
			TranslationKey: "validation.contains_lowercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ContainsDigit validates that a string contains at least one digit.
func ContainsDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, char := range value {
				if unicode.IsDigit(char) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one digit",
			TranslationKey: "validation.contains_digit",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotCommonPassword rejects passwords from the compromised-password list.
func NotCommonPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !commonPasswords[strings.ToLower(value)]
		},
		Error: ValidationError{
			Field:          field,
			Message:        "is too common; choose a less guessable password",
			TranslationKey: "validation.common_password",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// StrongPassword bundles the platform's password policy: minimum length,
// uppercase, lowercase, digit, and not on the common-password list.
func StrongPassword(field, value string) []Rule {
	return []Rule{
		MinLen(field, value, MinPasswordLen),
		ContainsUppercase(field, value),
		ContainsLowercase(field, value),
		ContainsDigit(field, value),
		NotCommonPassword(field, value),
	}
}
