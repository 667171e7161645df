package errs

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// HTTPStatusError carries the status a handler should answer with for an error raised below it.
type HTTPStatusError struct {
	StatusCode  int
	Message     string
	OriginalErr error
}

func (e *HTTPStatusError) Error() string {
	if e.OriginalErr == nil {
		return fmt.Sprintf("(status %d) %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("(status %d) %s: %v", e.StatusCode, e.Message, e.OriginalErr)
}

func (e *HTTPStatusError) Unwrap() error {
	return e.OriginalErr
}

func NewHTTPStatusError(statusCode int, message string, originalErr error) *HTTPStatusError {
	return &HTTPStatusError{
		StatusCode:  statusCode,
		Message:     message,
		OriginalErr: originalErr,
	}
}

func BadRequest(message string, originalErr error) error {
	return errors.WithStack(NewHTTPStatusError(http.StatusBadRequest, message, originalErr))
}

func NotFound(message string, originalErr error) error {
	return errors.WithStack(NewHTTPStatusError(http.StatusNotFound, message, originalErr))
}

func Unauthorized(message string, originalErr error) error {
	return errors.WithStack(NewHTTPStatusError(http.StatusUnauthorized, message, originalErr))
}

func IsHTTPStatusError(err error) (*HTTPStatusError, bool) {
	if err == nil {
		return nil, false
	}
	err = errors.Cause(err)
	httpErr, ok := err.(*HTTPStatusError)
	return httpErr, ok
}
