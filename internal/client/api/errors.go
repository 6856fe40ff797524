package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel error classes. Callers match with errors.Is; the concrete
// *Error (with status and backend message) is reachable via errors.As.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnavailable  = errors.New("server unavailable")
)

// Error is a non-2xx backend response: HTTP status plus the message field
// from the response body, when the backend supplied one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: %d", e.Status)
}

// Unwrap maps the status to its sentinel class so errors.Is works on the
// wrapped error.
func (e *Error) Unwrap() error {
	switch {
	case e.Status == 401:
		return ErrUnauthorized
	case e.Status == 403:
		return ErrForbidden
	case e.Status == 404:
		return ErrNotFound
	case e.Status == 422:
		return ErrValidation
	case e.Status >= 500:
		return ErrUnavailable
	}
	return nil
}

// errorBody is the backend's error envelope. The message field is a string
// for most errors but an array for validation failures, so it is decoded
// leniently.
type errorBody struct {
	Message json.RawMessage `json:"message"`
}

// parseErrorMessage extracts a printable message from a backend error body.
// Returns "" when the body carries none.
func parseErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Message) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(eb.Message, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(eb.Message, &list); err == nil {
		return strings.Join(list, "; ")
	}
	return ""
}
