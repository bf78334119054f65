package feeds

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrEmptySource  = errors.New("feed source is empty")
	ErrFeedTooLarge = errors.New("feed exceeds size limit")
)

// APIError represents an unexpected HTTP response from the feed host
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e APIError) Error() string {
	return fmt.Sprintf("feed host %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// Retryable reports whether the request may succeed if attempted again
func (e APIError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// NewAPIError creates a new APIError
func NewAPIError(endpoint string, statusCode int, message string) error {
	return APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    message,
	}
}

// IsAPIError checks if an error is an API error and returns it
func IsAPIError(err error) (APIError, bool) {
	var apiErr APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
