package dto

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message   string             `json:"message" example:"Request validation failed"`
	Code      string             `json:"code" example:"ERR_VALIDATION"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail describes one rejected field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageResponse is a success body that carries only a message
type MessageResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Message: message,
		Code:    code,
	}
}

// NewErrorResponseWithRequestID creates an error response tagged with the request id
func NewErrorResponseWithRequestID(code, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		Code:      code,
		RequestID: requestID,
	}
}

// NewValidationErrorResponse creates a validation error response with field details
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		Code:      ErrCodeValidation,
		RequestID: requestID,
		Details:   details,
	}
}
