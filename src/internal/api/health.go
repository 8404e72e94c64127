package api

import (
	"net/http"
)

// CheckHealth reports whether the configuration in use is fully usable.
// GET /health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{Status: "ok"}

	if err := h.lists.CheckConfig(); err != nil {
		response.Status = "degraded"
		response.Errors = append(response.Errors, err.Error())
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	writeJSONData(w, response)
}
