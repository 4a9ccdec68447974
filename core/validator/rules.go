package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Same pattern the PDI API applies on registration.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// MinPasswordLength is the shortest password the API accepts.
const MinPasswordLength = 8

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns ValidationErrors for the failing ones, or nil.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs.Add(r.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Required fails for blank strings.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: newError(field, "field is required", "validation.required", nil),
	}
}

// ValidEmail fails for addresses the API would reject. Empty values pass; pair with Required.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return value == "" || emailRegex.MatchString(value) },
		Error: newError(field, "must be a valid email address", "validation.email", nil),
	}
}

// MinLen fails when value has fewer than n runes. Empty values pass.
func MinLen(field, value string, n int) Rule {
	return Rule{
		Check: func() bool { return value == "" || utf8.RuneCountInString(value) >= n },
		Error: newError(field, fmt.Sprintf("must be at least %d characters", n), "validation.min_length",
			map[string]any{"min": n}),
	}
}

// MaxLen fails when value has more than n runes.
func MaxLen(field, value string, n int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= n },
		Error: newError(field, fmt.Sprintf("must be at most %d characters", n), "validation.max_length",
			map[string]any{"max": n}),
	}
}

// StrongPassword requires MinPasswordLength characters with an upper case
// letter, a lower case letter, a digit and a symbol. Empty values pass.
func StrongPassword(field, value string) Rule {
	return Rule{
		Check: func() bool { return value == "" || isStrongPassword(value) },
		Error: newError(field,
			fmt.Sprintf("must have at least %d characters with upper and lower case letters, a digit and a symbol", MinPasswordLength),
			"validation.password", map[string]any{"min": MinPasswordLength}),
	}
}

// OneOf fails when value is not in allowed. Empty values pass.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool { return value == "" || slices.Contains(allowed, value) },
		Error: newError(field, "must be one of "+strings.Join(allowed, ", "), "validation.in",
			map[string]any{"values": allowed}),
	}
}

// ValidUUID fails for values that are not UUIDs. Empty values pass.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			return uuid.Validate(value) == nil
		},
		Error: newError(field, "must be a valid UUID", "validation.uuid", nil),
	}
}

func isStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

func newError(field, msg, key string, values map[string]any) ValidationError {
	tv := map[string]any{"field": field}
	for k, v := range values {
		tv[k] = v
	}
	return ValidationError{
		Field:             field,
		Message:           msg,
		TranslationKey:    key,
		TranslationValues: tv,
	}
}
