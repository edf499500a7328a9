package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	err := &Error{Type: ErrorTypeAuth, Message: "invalid token", Code: 401}
	assert.Equal(t, "auth error (code 401): invalid token", err.Error())
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		want      bool
	}{
		{ErrorTypeNetwork, true},
		{ErrorTypeRateLimit, true},
		{ErrorTypeServerError, true},
		{ErrorTypeAuth, false},
		{ErrorTypeNotFound, false},
		{ErrorTypeParsing, false},
		{ErrorTypeCapacity, false},
		{ErrorTypeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.errorType), func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.errorType))
		})
	}
}

func TestIsCapacity(t *testing.T) {
	capErr := &Error{Type: ErrorTypeCapacity, Message: "grid limits exceeded", Code: 400}
	assert.True(t, IsCapacity(capErr))

	assert.False(t, IsCapacity(&Error{Type: ErrorTypeServerError, Code: 500}))
	assert.False(t, IsCapacity(errors.New("plain error")))
	assert.False(t, IsCapacity(nil))
}

func TestIsRetryableStatusCode(t *testing.T) {
	retryable := []int{0, 429, 500, 502, 503, 504, 599}
	for _, code := range retryable {
		assert.True(t, IsRetryableStatusCode(code), "status %d", code)
	}

	notRetryable := []int{200, 400, 401, 403, 404}
	for _, code := range notRetryable {
		assert.False(t, IsRetryableStatusCode(code), "status %d", code)
	}
}
