package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// EpisodesResponse for episode lists
type EpisodesResponse struct {
	BaseResponse
	Episodes []Episode `json:"episodes"`
	Count    int       `json:"count"`
}

// SingleEpisodeResponse for getting a single episode
type SingleEpisodeResponse struct {
	BaseResponse
	Episode *Episode `json:"episode"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`   // Error code/type
	Details any    `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Timestamp string         `json:"timestamp"`
	Feed      string         `json:"feed,omitempty"`
	Episodes  int            `json:"episodes"`
	Database  map[string]any `json:"database"`
}
