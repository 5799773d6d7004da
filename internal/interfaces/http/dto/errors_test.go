package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeTokenInvalid, http.StatusUnauthorized},
		{ErrCodeInvalidCredentials, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusBadRequest},
		{ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{"SOMETHING_ELSE", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("PRODUCT_NOT_FOUND"))
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("CUSTOMER_NOT_FOUND"))
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("USER_NOT_FOUND"))
	assert.Equal(t, ErrCodeAlreadyExists, NormalizeErrorCode("USER_ALREADY_EXISTS"))
	assert.Equal(t, ErrCodeTokenInvalid, NormalizeErrorCode("RESET_TOKEN_INVALID"))
	assert.Equal(t, ErrCodeUnauthorized, NormalizeErrorCode("RESET_TOKEN_MISSING"))
	assert.Equal(t, ErrCodeInvalidDate, NormalizeErrorCode("INVALID_DATE"))
	assert.Equal(t, ErrCodeValidation, NormalizeErrorCode("EMPTY_CART"))
	assert.Equal(t, ErrCodeValidation, NormalizeErrorCode("INVALID_PAYMENT_METHOD"))
}
