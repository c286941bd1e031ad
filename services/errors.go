package services

import (
	"errors"
)

// ErrInvalidCredentials is returned when login lookup or password
// comparison fails. The same error covers both cases so responses do
// not reveal which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError marks rejected input. Its message is safe to show to
// the caller and is authoritative for display.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(reason string) error {
	return &ValidationError{Reason: reason}
}
