package dto

// ErrorResponse represents a standardized error response for the API.
// The wire contract requires the "error" key; the numeric code is additive
// and ignored by the existing mobile client.
type ErrorResponse struct {
	Code  int    `json:"code,omitempty"`
	Error string `json:"error"`
}

// AuthErrorResponse is the error shape for credential failures, which carry
// an explicit success flag on the wire
type AuthErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse is a bare human-readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}
