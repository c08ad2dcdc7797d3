package api

import (
	"log/slog"
	"net/http"

	"github.com/NVIDIA/semv/pkg/checker"
	apierrors "github.com/NVIDIA/semv/pkg/errors"
	"github.com/NVIDIA/semv/pkg/serializer"
	"github.com/NVIDIA/semv/pkg/server"
)

// HandleCompare handles GET /v1/compare.
// It compares the precedence of the versions given in the a and b
// query parameters. Invalid versions participate in the ordering,
// sorting below all valid ones.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteError(w, r, http.StatusMethodNotAllowed, apierrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")
	if a == "" || b == "" {
		server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
			"both a and b query parameters are required", false, map[string]interface{}{
				"a": a,
				"b": b,
			})
		return
	}

	c := checker.CompareVersions(a, b)
	slog.Debug("compared versions", "a", c.A, "b", c.B, "relation", c.Relation)

	serializer.RespondJSON(w, http.StatusOK, c)
}
