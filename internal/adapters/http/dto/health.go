package dto

// Probe states reported by the health endpoints.
const (
	ProbeAlive    = "ok"
	ProbeReady    = "ready"
	ProbeNotReady = "not_ready"
)

// ProbeResponse is the body of /health/live and /health/ready. Checks is
// only set on readiness and maps each dependency to "ok" or its failure.
type ProbeResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
