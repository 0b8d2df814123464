package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that already knows which status code it maps to.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewBadRequestError creates a 400 HTTPError.
func NewBadRequestError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// NewInternalError creates a 500 HTTPError that carries err's text and wraps it.
func NewInternalError(err error) *HTTPError {
	return &HTTPError{Code: http.StatusInternalServerError, Message: err.Error(), Err: err}
}

// StatusCode returns the status carried by err, or 500 when err is not an HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
