package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/semv/pkg/checker"
	"github.com/NVIDIA/semv/pkg/defaults"
	apierrors "github.com/NVIDIA/semv/pkg/errors"
	"github.com/NVIDIA/semv/pkg/serializer"
	"github.com/NVIDIA/semv/pkg/server"
)

// CheckResponse is the response body for bulk validation requests.
type CheckResponse struct {
	Results []checker.Result `json:"results"`
	Summary checker.Summary  `json:"summary"`
}

// HandleCheck handles GET and POST /v1/check.
// GET validates a single version from the v query parameter.
// POST validates a batch of versions from the request body.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleCheckOne(w, r)
	case http.MethodPost:
		h.handleCheckBulk(w, r)
	default:
		server.WriteError(w, r, http.StatusMethodNotAllowed, apierrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
	}
}

func (h *Handler) handleCheckOne(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query().Get("v")
	if v == "" {
		server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
			"missing required query parameter: v", false, map[string]interface{}{
				"parameter": "v",
			})
		return
	}

	res := checker.Check(v)
	slog.Debug("checked version", "input", res.Input, "valid", res.Valid)

	serializer.RespondJSON(w, http.StatusOK, res)
}

func (h *Handler) handleCheckBulk(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeVersions(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.CheckHandlerTimeout)
	defer cancel()

	results, err := checker.CheckAll(ctx, req.Versions)
	if err != nil {
		slog.Error("bulk check failed", "error", err)
		server.WriteError(w, r, http.StatusInternalServerError, apierrors.ErrCodeInternal,
			"failed to check versions", true, nil)
		return
	}

	resp := CheckResponse{
		Results: results,
		Summary: checker.Summarize(results),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// decodeVersions parses and validates the bulk request body.
// On failure it writes the error response and returns ok=false.
func (h *Handler) decodeVersions(w http.ResponseWriter, r *http.Request) (*VersionsRequest, bool) {
	var req VersionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid request body: %v", err), false, nil)
		return nil, false
	}

	if len(req.Versions) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
			"versions list must not be empty", false, nil)
		return nil, false
	}

	if len(req.Versions) > h.maxBulkVersions {
		server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
			fmt.Sprintf("too many versions: %d exceeds limit of %d", len(req.Versions), h.maxBulkVersions),
			false, map[string]interface{}{
				"count": len(req.Versions),
				"limit": h.maxBulkVersions,
			})
		return nil, false
	}

	return &req, true
}
