package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request failure
type Kind string

const (
	KindMissingParameter Kind = "missing_parameter"
	KindInvalidNumber    Kind = "invalid_number"
	KindNotFound         Kind = "not_found"
	KindInternal         Kind = "internal"
)

// RequestError is a failure that terminates a single request and is
// reported to the client with its message and HTTP status
type RequestError struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *RequestError) Error() string {
	return e.Message
}

// MissingParameter reports that a required query parameter was absent or empty
func MissingParameter(name string) *RequestError {
	return &RequestError{
		Kind:    KindMissingParameter,
		Message: fmt.Sprintf("Query parameter '%s' is required", name),
		Status:  http.StatusBadRequest,
	}
}

// InvalidNumber reports the first token that could not be parsed as an integer
func InvalidNumber(token string) *RequestError {
	return &RequestError{
		Kind:    KindInvalidNumber,
		Message: fmt.Sprintf("'%s' is not a valid integer", token),
		Status:  http.StatusBadRequest,
	}
}

// NotFound reports an unmatched route
func NotFound() *RequestError {
	return &RequestError{
		Kind:    KindNotFound,
		Message: "Page Not Found",
		Status:  http.StatusNotFound,
	}
}

// Internal reports an unexpected failure
func Internal() *RequestError {
	return &RequestError{
		Kind:    KindInternal,
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// As extracts the RequestError from err.
// Anything else is reported as an internal error so its details never reach the client.
func As(err error) *RequestError {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}
	return Internal()
}
