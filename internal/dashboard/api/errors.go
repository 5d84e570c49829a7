package api

import (
	"errors"
	"fmt"
)

// Error is a rejected API call with the server's human-readable message.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("api: %s", e.Message)
}

// ErrorMessage extracts the server message from err, or returns fallback
// when err carries nothing displayable.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
