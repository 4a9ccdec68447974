package validator

import (
	"errors"
	"strings"
)

// ValidationError describes one failed rule.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every failed rule of one validation pass.
type ValidationErrors []ValidationError

// Add appends err.
func (v *ValidationErrors) Add(err ValidationError) {
	*v = append(*v, err)
}

// IsEmpty reports whether no rule failed.
func (v ValidationErrors) IsEmpty() bool {
	return len(v) == 0
}

// Has reports whether field has at least one error.
func (v ValidationErrors) Has(field string) bool {
	return len(v.Get(field)) > 0
}

// Get returns the messages for field.
func (v ValidationErrors) Get(field string) []string {
	var msgs []string
	for _, e := range v {
		if e.Field == field {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err contains ValidationErrors.
func IsValidationError(err error) bool {
	var verrs ValidationErrors
	return errors.As(err, &verrs)
}
