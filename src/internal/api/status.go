package api

import (
	"errors"
	"net/http"

	"github.com/maksimkurb/newsletter-lists/src/internal/config"
	"github.com/maksimkurb/newsletter-lists/src/internal/log"
)

var (
	// Version information set via ldflags at build time
	Version = "dev"
	Date    = "n/a"
	Commit  = "n/a"
)

// GetStatus returns build information and the configuration state.
// GET /api/v1/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, StatusResponse{
		Version: VersionInfo{
			Version: Version,
			Date:    Date,
			Commit:  Commit,
		},
		Config: h.lists.Status(),
	})
}

// Reload re-reads the configuration file.
// POST /api/v1/reload
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	changed, err := h.lists.Reload()
	if err != nil {
		var validationErrors config.ValidationErrors
		if errors.As(err, &validationErrors) {
			details := make(map[string]any, len(validationErrors))
			for _, ve := range validationErrors {
				details[ve.FieldPath] = ve.Message
			}
			WriteValidationError(w, "configuration validation failed", details)
			return
		}
		WriteInternalError(w, "Failed to reload configuration: "+err.Error())
		return
	}

	if changed {
		log.Infof("Configuration reloaded via API")
	}
	writeJSONData(w, ReloadResponse{Changed: changed})
}
