package client

import (
	"errors"
	"fmt"
)

// TransportError covers network failures, timeouts and non-2xx responses.
type TransportError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s failed: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that does not match the expected shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when the remote service has no such pokemon.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pokemon %q not found", e.Name)
}

// ErrorKind names the failure class of err for log fields.
func ErrorKind(err error) string {
	var (
		transportErr *TransportError
		decodeErr    *DecodeError
		notFoundErr  *NotFoundError
	)

	switch {
	case errors.As(err, &notFoundErr):
		return "not_found"
	case errors.As(err, &decodeErr):
		return "decode"
	case errors.As(err, &transportErr):
		return "transport"
	default:
		return "unknown"
	}
}
