package nocodb

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoSession is returned when a context carries no active client.
var ErrNoSession = errors.New("no active session: no client installed in context")

// ConfigError reports a missing or empty required configuration field.
type ConfigError struct {
	Field string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s is required", e.Field)
}

// ConnectionError reports a transport-level failure (DNS resolution, refused
// connection, timeout) before any HTTP response was received.
type ConnectionError struct {
	Op  string
	URL string
	Err error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// APIError represents a non-success response from the NocoDB API.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"message"     yaml:"message"`
	Detail     string `json:"detail"      yaml:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}

	return e.Message
}

// NewAPIError builds an APIError for the given status and detail. A zero
// status means the response carried no usable status code.
func NewAPIError(statusCode int, detail string) *APIError {
	message := "API request failed"
	if statusCode > 0 {
		message = fmt.Sprintf("API request failed (HTTP %d)", statusCode)
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Detail:     detail,
	}
}

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 API error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 API error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsConfig checks if the error is a configuration error.
func IsConfig(err error) bool {
	configErr := &ConfigError{}

	return errors.As(err, &configErr)
}

// IsConnection checks if the error is a transport-level connection error.
func IsConnection(err error) bool {
	connErr := &ConnectionError{}

	return errors.As(err, &connErr)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
