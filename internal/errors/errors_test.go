package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err          error
		expectedCode int
	}{
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrInvalidRefreshToken, http.StatusUnauthorized},
		{ErrUserAlreadyExists, http.StatusConflict},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrEnquiryNotFound, http.StatusNotFound},
		{ErrProductNotFound, http.StatusNotFound},
		{ErrVendorNotEligible, http.StatusUnprocessableEntity},
		{ErrAdminImmutable, http.StatusUnprocessableEntity},
		{ErrEmptyInput, http.StatusBadRequest},
		{ErrQualificationFailed, http.StatusBadGateway},
		{fmt.Errorf("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedCode, httpErr.StatusCode)
		})
	}
}

func TestMapErrorToHTTP_UnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: gemini API error 429", ErrQualificationFailed)

	httpErr := MapErrorToHTTP(wrapped)

	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "QUALIFICATION_FAILED", httpErr.Code)
}
