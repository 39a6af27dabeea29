package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrRequestFailed is wrapped by every error returned from a
	// [ServerAdapter] call.
	ErrRequestFailed = errors.New("request failed")
	// ErrHTTPStatus marks a response whose status is outside [200, 300).
	ErrHTTPStatus = errors.New("unexpected http status")
	// ErrTransport marks a request that never got a response.
	ErrTransport = errors.New("transport error")

	// ErrInvalidCredentials is returned by Authenticate on HTTP 400.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is matched by a 401 [StatusError].
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrNotFound is matched by a 404 [StatusError].
	ErrNotFound = errors.New("not found")
)

// StatusError is returned when the server answers outside [200, 300).
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.Code)
	}
	return fmt.Sprintf("http %d: %s", e.Code, body)
}

// Unwrap lets errors.Is match the generic failure sentinels as well as the
// status specific ones.
func (e *StatusError) Unwrap() []error {
	errs := []error{ErrRequestFailed, ErrHTTPStatus}
	switch e.Code {
	case http.StatusUnauthorized:
		errs = append(errs, ErrUnauthorized)
	case http.StatusNotFound:
		errs = append(errs, ErrNotFound)
	}
	return errs
}

func newStatusError(code int, body []byte) *StatusError {
	return &StatusError{Code: code, Body: strings.TrimSpace(string(body))}
}

func transportError(err error) error {
	return fmt.Errorf("%w: %w: %w", ErrRequestFailed, ErrTransport, err)
}
