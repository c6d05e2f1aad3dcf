// Package validator collects field-level validation errors for request payloads.
package validator

import (
	"regexp"
)

var (
	EmailRX   = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	NumericRX = regexp.MustCompile(`^[0-9]+$`)
	DateRX    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Validator maps a field name to the first error recorded for it.
type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError keeps the first message reported for key.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Required records key as missing when present is false.
func (v *Validator) Required(present bool, key string) {
	v.Check(present, key, "is required")
}

func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}
