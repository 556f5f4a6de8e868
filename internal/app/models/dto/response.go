package dto

// SuccessResponse is the minimal success envelope for JSON endpoints.
type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Registration successful"`
}

// ErrorResponse is the error envelope for JSON endpoints. The error text is
// reported to the caller as-is.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid credentials"`
}

// NewSuccessResponse creates a success envelope with an optional message.
func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{Success: true, Message: message}
}

// NewErrorResponse creates an error envelope from an error.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}
