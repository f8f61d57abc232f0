package exception

import (
	"errors"
	"fmt"
	"net/http"
)

// ApplicationError handles application level errors.
// Message is what the client sees, Cause is only logged.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

// BadRequest builds a 400 error carrying a client facing message.
func BadRequest(message string) ApplicationError {
	return ApplicationError{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// Wrap attaches cause to a copy of e.
func (e ApplicationError) Wrap(cause error) ApplicationError {
	e.Cause = cause
	return e
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

// Is matches on message and status code so a wrapped copy still matches its sentinel.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.StatusCode == targetErr.StatusCode &&
		e.Message == targetErr.Message
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}
