package mockapi

import "fmt"

// Error is the structured failure a generator raises. The transport turns it
// into an HTTP response with the same status and message, so callers cannot
// tell a mock failure from a real one.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("mockapi: %d %s", e.Status, e.Message)
}

func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}
