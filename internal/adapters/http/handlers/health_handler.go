package handlers

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/jsamuelsen11/character-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

type livenessResponse struct {
	Status string `json:"status"`
}

// readinessResponse maps each checker name to "ok" or its failure message.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler serves the probe endpoints and /api/ping.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler reports readiness from registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, livenessResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every registered dependency
// is healthy, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{
		Status: statusReady,
		Checks: lo.MapValues(results, func(err error, _ string) string {
			if err != nil {
				return err.Error()
			}
			return statusOK
		}),
	}
	code := http.StatusOK
	if lo.SomeBy(lo.Values(results), func(err error) bool { return err != nil }) {
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, r, code, resp)
}

// Ping handles GET /api/ping with a plain-text "Pong".
func (h *HealthHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Pong"))
}
