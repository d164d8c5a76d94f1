package handlers

import (
	"net/http"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/dto"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

// HealthHandler serves the unauthenticated probe routes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness answers as long as the process can serve HTTP.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ProbeResponse{Status: dto.ProbeAlive})
}

// Readiness is 200 when every registered dependency is healthy and 503
// otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ProbeResponse{Status: dto.ProbeReady, Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			resp.Checks[name] = dto.ProbeAlive
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status, code = dto.ProbeNotReady, http.StatusServiceUnavailable
	}

	writeJSON(w, r, code, resp)
}
