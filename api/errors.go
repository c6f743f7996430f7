package api

import "fmt"

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return "unexpected status code: " + e.Status
}

// DecodeError means the response body did not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RequestError means the request could not be built; nothing was sent.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error { return e.Err }
