package sheets

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	errs "botsweep/pkg/errors"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		message string
		want    errs.ErrorType
	}{
		{"grid limit is capacity", http.StatusBadRequest, "This action would increase the number of cells in the workbook above the limit of 10000000 cells.", errs.ErrorTypeCapacity},
		{"grid limits wording", http.StatusBadRequest, "range exceeds grid limits", errs.ErrorTypeCapacity},
		{"plain bad request", http.StatusBadRequest, "invalid range", errs.ErrorTypeUnknown},
		{"unauthorized", http.StatusUnauthorized, "invalid credentials", errs.ErrorTypeAuth},
		{"forbidden", http.StatusForbidden, "permission denied", errs.ErrorTypeAuth},
		{"not found", http.StatusNotFound, "spreadsheet not found", errs.ErrorTypeNotFound},
		{"rate limited", http.StatusTooManyRequests, "quota exceeded", errs.ErrorTypeRateLimit},
		{"server error", http.StatusServiceUnavailable, "backend error", errs.ErrorTypeServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError(&googleapi.Error{Code: tt.code, Message: tt.message})

			apiErr, ok := err.(*errs.Error)
			require.True(t, ok)
			assert.Equal(t, tt.want, apiErr.Type)
			assert.Equal(t, tt.code, apiErr.Code)
		})
	}
}

func TestClassifyErrorNonGoogleAPI(t *testing.T) {
	err := classifyError(errors.New("connection reset"))

	apiErr, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.ErrorTypeNetwork, apiErr.Type)
}

func TestQuoteSheet(t *testing.T) {
	assert.Equal(t, "'Bots'!A:B", appendRange("Bots"))
	assert.Equal(t, "'Bots_2'!A1:B1", headerRange("Bots_2"))

	// Embedded quotes are doubled, not left to break the range
	assert.Equal(t, "'Bob''s Bots'!A:B", appendRange("Bob's Bots"))
}
