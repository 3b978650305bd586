// Package forms carries the field-scoped validation failure type shared
// by the news and notes domains. A *forms.Error is a normal control-flow
// outcome: the request is answered with the re-displayed form, never with
// a server error.
package forms

import "errors"

type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Field + ": " + e.Message
}

// FieldError creates a validation error for one form field.
func FieldError(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// AsError extracts a *forms.Error from an error chain.
func AsError(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
