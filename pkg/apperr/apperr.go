package apperr

import "errors"

// Error is a deliberate, expected domain-level rejection. It carries the
// message shown to the client and the HTTP status it maps to. Anything that
// is not an *Error is treated as unexpected and answered with a generic 500.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string { return e.Message }

// New builds an application error with the default 400 status.
func New(message string) *Error {
	return &Error{Message: message, StatusCode: 400}
}

// WithStatus builds an application error with an explicit status code.
func WithStatus(message string, statusCode int) *Error {
	return &Error{Message: message, StatusCode: statusCode}
}

// From extracts an *Error from err's chain, if any.
func From(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
