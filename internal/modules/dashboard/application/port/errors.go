package port

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingParameter is returned before any I/O when a required path parameter is blank.
	ErrMissingParameter = errors.New("missing path parameter")
	// ErrInvalidPayload wraps successful responses whose body fails boundary validation.
	ErrInvalidPayload = errors.New("invalid response payload")
)

// APIError is a non-2xx answer from the dashboard API. Error() is exactly the message the
// server sent, or the operation's fallback description.
type APIError struct {
	Operation string
	Status    int
	Message   string
}

func (e *APIError) Error() string { return e.Message }

// HTTPStatus lets the gateway forward the upstream status unchanged.
func (e *APIError) HTTPStatus() int { return e.Status }

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
