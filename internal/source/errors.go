package source

import (
	"errors"
	"fmt"
)

// FetchError is the single failure kind of the activity source. Transport
// failures, non-2xx responses and undecodable bodies all surface as a
// *FetchError. Callers should prefer IsFetchError and StatusCode over
// asserting on the type directly.
type FetchError struct {
	operation  string
	statusCode int
	status     string
	err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.status != "":
		return fmt.Sprintf("Failed to fetch activities: %s", e.status)
	case e.err != nil:
		return fmt.Sprintf("Failed to fetch activities: %s: %v", e.operation, e.err)
	default:
		return "Failed to fetch activities"
	}
}

func (e *FetchError) Unwrap() error { return e.err }

// Operation returns the step that failed ("do request", "decode response", ...).
func (e *FetchError) Operation() string { return e.operation }

// StatusCode returns the HTTP status code, 0 when no response was received.
func (e *FetchError) StatusCode() int { return e.statusCode }

// Status returns the response's status text, empty when no response was received.
func (e *FetchError) Status() string { return e.status }

func statusError(code int, status string) *FetchError {
	return &FetchError{operation: "read activities", statusCode: code, status: status}
}

func causeError(operation string, err error) *FetchError {
	return &FetchError{operation: operation, err: err}
}

// IsFetchError reports whether err is, or wraps, a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.statusCode
	}
	return 0
}
