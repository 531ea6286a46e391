package model

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		code int
		want ErrorClass
	}{
		{http.StatusTooManyRequests, ErrorClassRateLimited},
		{http.StatusInternalServerError, ErrorClassTransient},
		{http.StatusBadGateway, ErrorClassTransient},
		{http.StatusServiceUnavailable, ErrorClassTransient},
		{http.StatusRequestTimeout, ErrorClassTransient},
		{http.StatusUnauthorized, ErrorClassPermanent},
		{http.StatusForbidden, ErrorClassPermanent},
		{http.StatusBadRequest, ErrorClassPermanent},
		{http.StatusNotFound, ErrorClassPermanent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyStatus(tt.code), "status %d", tt.code)
	}
}

func TestIsRetryableClass(t *testing.T) {
	assert.True(t, IsRetryableClass(ErrorClassTransient))
	assert.True(t, IsRetryableClass(ErrorClassRateLimited))
	assert.False(t, IsRetryableClass(ErrorClassPermanent))
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 5*time.Second, parseRetryAfter("5"))
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, time.Duration(0), parseRetryAfter("-3"))
	assert.Equal(t, time.Duration(0), parseRetryAfter("Wed, 21 Oct 2026 07:28:00 GMT"))
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{
		Provider:   "openai-mini",
		Model:      "gpt-4o-mini",
		StatusCode: 429,
		Class:      ErrorClassRateLimited,
		Message:    "quota",
	}
	assert.Contains(t, err.Error(), "openai-mini")
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate_limited")
}
