package heyreach

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies every failure returned by the client.
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindUnauthorized
	ErrorKindNotFound
	ErrorKindTooManyRequests
	ErrorKindBadRequest
	ErrorKindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUnauthorized:
		return "Unauthorized"
	case ErrorKindNotFound:
		return "NotFound"
	case ErrorKindTooManyRequests:
		return "TooManyRequests"
	case ErrorKindBadRequest:
		return "BadRequest"
	case ErrorKindValidation:
		return "Validation"
	default:
		return "Unknown"
	}
}

// kindForStatus maps a non-success HTTP status code to its error kind.
func kindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusBadRequest:
		return ErrorKindBadRequest
	case http.StatusUnauthorized:
		return ErrorKindUnauthorized
	case http.StatusNotFound:
		return ErrorKindNotFound
	case http.StatusUnprocessableEntity:
		return ErrorKindValidation
	case http.StatusTooManyRequests:
		return ErrorKindTooManyRequests
	default:
		return ErrorKindUnknown
	}
}

// Error represents a classified failure, either reported by the HeyReach API
// or raised while building, sending or decoding a request.
type Error struct {
	Kind    ErrorKind
	Message string
	// StatusCode is zero when the failure happened before a response arrived.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("heyreach api request failed with status %d (%s): %s", e.StatusCode, e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("heyreach api request failed (%s): %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("heyreach api request failed (%s): %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func stageError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or ErrorKindUnknown if err was not produced
// by this package.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ErrorKindUnknown
}

func isErrorKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// IsUnauthorized checks if the error represents a rejected API key.
func IsUnauthorized(err error) bool {
	return isErrorKind(err, ErrorKindUnauthorized)
}

// IsNotFound checks if the error represents a 404 Not Found response.
func IsNotFound(err error) bool {
	return isErrorKind(err, ErrorKindNotFound)
}

// IsTooManyRequests checks if the error represents a 429 response.
func IsTooManyRequests(err error) bool {
	return isErrorKind(err, ErrorKindTooManyRequests)
}

// IsBadRequest checks if the error represents a 400 Bad Request response.
func IsBadRequest(err error) bool {
	return isErrorKind(err, ErrorKindBadRequest)
}

// IsValidation checks if the error represents a 422 response.
func IsValidation(err error) bool {
	return isErrorKind(err, ErrorKindValidation)
}
