package apiclient

import (
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the server. Message is the "message"
// field of the body and may be empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status code %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// TransportError means no usable response arrived: dial failure, timeout,
// cancelled context or an undecodable body.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
