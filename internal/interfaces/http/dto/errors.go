package dto

import "net/http"

// API error codes. Clients branch on these, so they never change once shipped.
const (
	ErrCodeInternal = "ERR_INTERNAL"

	ErrCodeValidation    = "ERR_VALIDATION"
	ErrCodeInvalidDate   = "ERR_INVALID_DATE"
	ErrCodeInvalidAmount = "ERR_INVALID_AMOUNT" // non-positive or not a number

	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED" // no token at all
	ErrCodeTokenInvalid       = "ERR_TOKEN_INVALID"
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeIncorrectAnswer    = "ERR_INCORRECT_ANSWER"

	ErrCodeForbidden     = "ERR_FORBIDDEN"
	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"

	ErrCodeBadRequest      = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput    = "ERR_INVALID_INPUT"
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
	ErrCodeRateLimited     = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Duplicate registration is a client error here, as the front end expects 400.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:    http.StatusBadRequest,
	ErrCodeInvalidDate:   http.StatusBadRequest,
	ErrCodeInvalidAmount: http.StatusBadRequest,

	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusBadRequest,
	ErrCodeIncorrectAnswer:    http.StatusBadRequest,

	ErrCodeForbidden:     http.StatusForbidden,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusBadRequest,

	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes are treated as invalid input.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}

// DomainErrorCodeMapping maps domain error codes to API error codes.
// Domain codes not listed here are validation failures.
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":           ErrCodeNotFound,
	"ALREADY_EXISTS":      ErrCodeAlreadyExists,
	"INVALID_INPUT":       ErrCodeInvalidInput,
	"UNAUTHORIZED":        ErrCodeUnauthorized,
	"USER_NOT_FOUND":      ErrCodeNotFound,
	"PRODUCT_NOT_FOUND":   ErrCodeNotFound,
	"CUSTOMER_NOT_FOUND":  ErrCodeNotFound,
	"USER_ALREADY_EXISTS": ErrCodeAlreadyExists,
	"INVALID_CREDENTIALS": ErrCodeInvalidCredentials,
	"INCORRECT_ANSWER":    ErrCodeIncorrectAnswer,
	"RESET_TOKEN_MISSING": ErrCodeUnauthorized,
	"RESET_TOKEN_INVALID": ErrCodeTokenInvalid,
	"INVALID_DATE":        ErrCodeInvalidDate,
	"INVALID_AMOUNT":      ErrCodeInvalidAmount,
}

// NormalizeErrorCode converts a domain error code to its API code
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return ErrCodeValidation
}
