package api

import (
	"github.com/maksimkurb/newsletter-lists/src/internal/newsletter"
	"github.com/maksimkurb/newsletter-lists/src/internal/service"
)

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data any `json:"data"`
}

// ListInfo describes a single newsletter list.
type ListInfo struct {
	Name    string            `json:"name"`
	ID      newsletter.ListID `json:"id"`
	Default bool              `json:"default"`
}

// ListsResponse returns all configured lists.
type ListsResponse struct {
	Lists           []ListInfo `json:"lists"`
	DefaultListName string     `json:"default_list_name"`
}

// HealthResponse reports whether the configuration in use is fully usable.
type HealthResponse struct {
	Status string   `json:"status"` // "ok" or "degraded"
	Errors []string `json:"errors,omitempty"`
}

// StatusResponse returns build and configuration state.
type StatusResponse struct {
	Version VersionInfo    `json:"version"`
	Config  service.Status `json:"config"`
}

// ReloadResponse reports the outcome of a configuration reload.
type ReloadResponse struct {
	Changed bool `json:"changed"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
