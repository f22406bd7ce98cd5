package server

import (
	"time"
)

// ErrorResponse represents error responses as per the public API contract
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// CompareRequest is the POST /v1/compare request body.
type CompareRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// CompareResponse is the /v1/compare response body.
type CompareResponse struct {
	Left     string `json:"left"`
	Right    string `json:"right"`
	Result   int    `json:"result"`
	Relation string `json:"relation"`
	Higher   string `json:"higher"`
}

// HighestRequest is the POST /v1/highest request body.
type HighestRequest struct {
	Versions []string `json:"versions"`
}

// HighestResponse is the POST /v1/highest response body.
type HighestResponse struct {
	Highest string `json:"highest"`
	Count   int    `json:"count"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}
