package validation

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Validator defines validation methods
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records the first message for a field.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks that a string is not blank or a pointer is set.
func (v *Validator) Required(field string, value interface{}) {
	switch val := value.(type) {
	case nil:
		v.AddError(field, "is required")
	case string:
		v.Check(strings.TrimSpace(val) != "", field, "must not be empty")
	case *float64:
		v.Check(val != nil, field, "is required")
	case *string:
		v.Check(val != nil && strings.TrimSpace(*val) != "", field, "must not be empty")
	}
}

// MaxLength checks if a string has at most n characters
func (v *Validator) MaxLength(field string, value string, n int) {
	v.Check(len([]rune(value)) <= n, field, fmt.Sprintf("must not be more than %d characters long", n))
}

// MaxItems caps the length of a list.
func (v *Validator) MaxItems(field string, items []string, n int) {
	v.Check(len(items) <= n, field, fmt.Sprintf("must not contain more than %d items", n))
}

// Finite rejects NaN and infinities.
func (v *Validator) Finite(field string, value float64) {
	v.Check(!math.IsNaN(value) && !math.IsInf(value, 0), field, "must be a finite number")
}

// Range checks if a number is between min and max
func (v *Validator) Range(field string, value float64, min, max float64) {
	v.Finite(field, value)
	v.Check(value >= min && value <= max, field, fmt.Sprintf("must be between %v and %v", min, max))
}

// Err returns nil when valid, otherwise an *Error carrying the field messages.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return &Error{Fields: v.Errors}
}

// Error is returned by services when input fails validation.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
