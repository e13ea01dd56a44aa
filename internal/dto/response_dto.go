package dto

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
