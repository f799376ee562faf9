package failure

import (
	"errors"
	"net/http"
)

// Failure pairs an HTTP status with a message that is safe to return to clients.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the client-facing message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the error a Failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// New returns a Failure with the given code and message.
func New(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

func wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

// BadRequest returns nil for a nil err.
func BadRequest(err error) error {
	return wrap(http.StatusBadRequest, err)
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

// InternalError returns nil for a nil err.
func InternalError(err error) error {
	return wrap(http.StatusInternalServerError, err)
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// ServiceUnavailable returns a new Failure with code for dependencies that are down.
func ServiceUnavailable(msg string) error {
	return New(http.StatusServiceUnavailable, msg)
}

// GetCode returns the status of the first Failure in err's chain, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Is reports whether err carries a Failure with the given code.
func Is(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}

// Message is what a client may see for err. Errors never classified as a Failure keep their detail out of responses.
func Message(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return http.StatusText(http.StatusInternalServerError)
}
