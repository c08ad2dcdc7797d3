package api

import (
	"github.com/NVIDIA/semv/pkg/defaults"
)

// Handler serves the version validation endpoints.
type Handler struct {
	maxBulkVersions int
}

// NewHandler creates a new Handler with default request limits.
func NewHandler() *Handler {
	return &Handler{
		maxBulkVersions: defaults.MaxBulkVersions,
	}
}

// VersionsRequest is the JSON body accepted by the bulk endpoints.
type VersionsRequest struct {
	Versions []string `json:"versions"`
}
