package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced to the lifecycle coordinator and external callers.
// Validation and not-found failures are hard errors; unavailable and
// no-larger-room are degraded outcomes the coordinator reports alongside a
// persisted appointment.
const (
	CodeValidation       = "validationError"
	CodeRoomNotFound     = "roomNotFound"
	CodeRoomUnavailable  = "roomUnavailable"
	CodeNoLargerRoom     = "noLargerRoomAvailable"
	CodeMissingAttendees = "missingAttendeeCount"
)

// Error is a typed booking failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// HasCode reports whether err is (or wraps) a booking Error with the code.
func HasCode(err error, code string) bool {
	var be *Error
	return errors.As(err, &be) && be.Code == code
}
