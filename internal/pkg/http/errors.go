package http

import (
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/dmpt/absensi/internal/pkg/models"
)

const (
	// unauthorizedMessage is the message carried by the error returned on 401
	unauthorizedMessage = "Unauthorized access, please log in again"
	// defaultErrorMessage is used when a non-2xx body has no readable message
	defaultErrorMessage = "An error occurred"
)

// ErrUnauthorized matches any HTTPError with status 401
var ErrUnauthorized = errors.New("unauthorized")

// HTTPError represents a non-2xx response from the backend
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses
func (e *HTTPError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == nethttp.StatusUnauthorized
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not an HTTPError
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// WrapNotFound marks a 404 response so callers can match it with models.ErrNotFound.
// Other errors are returned unchanged.
func WrapNotFound(err error) error {
	if StatusCode(err) == nethttp.StatusNotFound {
		return fmt.Errorf("%w: %w", models.ErrNotFound, err)
	}
	return err
}
