package dto

// ErrorResponse is the wire shape every failing endpoint returns. Proxy
// routes carry the upstream error text through verbatim.
type ErrorResponse struct {
	Error string `json:"error" example:"student not found"`
}

// NewErrorResponse wraps a message in the standard error body.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
