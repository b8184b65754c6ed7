package dto

// HealthResponse represents the response structure for health checks
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Details any    `json:"details,omitempty"`
}
