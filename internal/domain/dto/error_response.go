package dto

// ErrorResponse is the uniform error body returned by every endpoint.
//
// The API contract is a single `error` field carrying a human-readable
// message; the HTTP status code carries the classification.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid company symbol"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error. When err is non-nil its message is appended so upstream
// failures stay diagnosable by the caller.
func NewErrorResponse(message string, err error) ErrorResponse {
	if err != nil {
		return ErrorResponse{Error: message + ": " + err.Error()}
	}
	return ErrorResponse{Error: message}
}
