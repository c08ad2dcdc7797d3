package api

import (
	"log/slog"
	"net/http"

	"github.com/NVIDIA/semv/pkg/checker"
	apierrors "github.com/NVIDIA/semv/pkg/errors"
	"github.com/NVIDIA/semv/pkg/serializer"
	"github.com/NVIDIA/semv/pkg/server"
)

// SortResponse is the response body for sort requests.
// Latest is the canonical form of the highest valid version,
// empty when the list contains no valid versions.
type SortResponse struct {
	Versions []string `json:"versions"`
	Latest   string   `json:"latest,omitempty"`
}

// HandleSort handles POST /v1/sort.
// It sorts the submitted versions in ascending precedence order.
// Invalid versions sort first, equal versions keep a stable
// lexical order.
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteError(w, r, http.StatusMethodNotAllowed, apierrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	req, ok := h.decodeVersions(w, r)
	if !ok {
		return
	}

	resp := SortResponse{
		Versions: checker.SortedCopy(req.Versions),
		Latest:   checker.Latest(req.Versions),
	}
	slog.Debug("sorted versions", "count", len(resp.Versions), "latest", resp.Latest)

	serializer.RespondJSON(w, http.StatusOK, resp)
}
