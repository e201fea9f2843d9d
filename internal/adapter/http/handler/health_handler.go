package handler

import (
	"net/http"

	"github.com/iho/gowallet/internal/usecase"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	store usecase.SnapshotStore
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store usecase.SnapshotStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness probes the snapshot store. The ledger keeps working from memory
// when the store is down, so a failed probe is reported but still answers
// 200: the service is degraded, not dead.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	storage := "ok"

	if _, err := h.store.Load(r.Context(), usecase.SnapshotKeyBalance); err != nil {
		storage = "unavailable"
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  status,
		"storage": storage,
	})
}
