package types

import "time"

// ErrorResponse represents a transport-level API error. JSON-RPC errors are
// carried inside the JSON-RPC envelope instead.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Homey     string    `json:"homey"`
	Timestamp time.Time `json:"timestamp"`
}
