// Package validation provides request field validation utilities.
package validation

import (
	"regexp"

	"devconnect/internal/models"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

const maxPasswordLength = 128

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors accumulates per-field validation failures in the order the rules
// were applied. An empty list means the payload passed.
type Errors struct {
	fields []models.FieldError
}

// Add records a failure for the named field.
func (e *Errors) Add(field, message string) {
	e.fields = append(e.fields, models.FieldError{Field: field, Message: message})
}

// Require records a failure when value is empty.
func (e *Errors) Require(field, value, message string) {
	if value == "" {
		e.Add(field, message)
	}
}

// Email records a failure when value does not look like an email address.
func (e *Errors) Email(field, value string) {
	if !emailPattern.MatchString(value) {
		e.Add(field, "Please include a valid email")
	}
}

// Password records a failure when value does not meet the password rules.
func (e *Errors) Password(field, value string) {
	if len(value) < MinPasswordLength {
		e.Add(field, "Password must be at least 6 characters")
		return
	}
	if len(value) > maxPasswordLength {
		e.Add(field, "Password must not exceed 128 characters")
	}
}

// Empty reports whether no failures were recorded.
func (e *Errors) Empty() bool {
	return len(e.fields) == 0
}

// Fields returns the recorded failures in application order.
func (e *Errors) Fields() []models.FieldError {
	return e.fields
}

// Err returns a validation AppError carrying the recorded failures, or nil
// when the payload passed.
func (e *Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return models.NewFieldErrors(e.fields)
}
