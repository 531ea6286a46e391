package model

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrBudgetExceeded indicates the job's USD ceiling would be crossed.
	// Not retryable; resume requires a config change.
	ErrBudgetExceeded = errors.New("job cost budget exceeded")

	// ErrAllProvidersFailed indicates every provider in the tier's fallback
	// chain failed or was skipped by its circuit breaker
	ErrAllProvidersFailed = errors.New("all providers failed")
)

// ErrorClass classifies provider failures for retry and breaker decisions
type ErrorClass string

const (
	// ErrorClassTransient covers network failures, timeouts, and 5xx
	ErrorClassTransient ErrorClass = "transient"

	// ErrorClassRateLimited covers 429; RetryAfter is honored when present
	ErrorClassRateLimited ErrorClass = "rate_limited"

	// ErrorClassPermanent covers auth and request errors that a retry
	// against the same provider cannot fix
	ErrorClassPermanent ErrorClass = "permanent"
)

// APIError is a classified provider failure
type APIError struct {
	Provider   string
	Model      string
	StatusCode int
	Class      ErrorClass
	RetryAfter time.Duration
	Message    string
}

// Error returns formatted error message
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s (%s): HTTP %d (%s): %s",
			e.Provider, e.Model, e.StatusCode, e.Class, e.Message)
	}
	return fmt.Sprintf("provider %s (%s): %s: %s", e.Provider, e.Model, e.Class, e.Message)
}

// classifyStatus maps an HTTP status code to an error class
func classifyStatus(code int) ErrorClass {
	switch {
	case code == http.StatusTooManyRequests:
		return ErrorClassRateLimited
	case code >= 500:
		return ErrorClassTransient
	case code == http.StatusRequestTimeout:
		return ErrorClassTransient
	default:
		return ErrorClassPermanent
	}
}

// IsRetryableClass reports whether a failure of this class is worth retrying
// against the same provider
func IsRetryableClass(class ErrorClass) bool {
	return class == ErrorClassTransient || class == ErrorClassRateLimited
}
