package api

import (
	"errors"
	"fmt"
	"strings"
)

// FetchFailure is the message browsers give a request that never got an
// answer. Errors carrying it are treated like a *TransportError.
const FetchFailure = "Failed to fetch"

// HTTPError represents a non-2xx response from the CRUD server.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// TransportError means the request never reached the server or no response
// came back: connection refused, DNS failure, reset.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", FetchFailure, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError means the server answered 2xx with a body that is not the
// expected JSON.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsTransport reports whether err is a transport-level failure, either typed
// or recognised by the fetch-failure signature in its message.
func IsTransport(err error) bool {
	if err == nil {
		return false
	}
	var te *TransportError
	if errors.As(err, &te) {
		return true
	}
	return strings.Contains(err.Error(), FetchFailure)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}
