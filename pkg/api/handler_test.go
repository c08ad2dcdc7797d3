package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NVIDIA/semv/pkg/checker"
)

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	if name != "semvd" {
		t.Errorf("name = %q, want %q", name, "semvd")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	// Verify buildtime variables exist (they may have default values)
	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}

func TestHandleCheck_Get(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/check?v=v1.2.3-rc.1", nil)
	w := httptest.NewRecorder()

	h.HandleCheck(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var res checker.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !res.Valid {
		t.Error("expected version to be valid")
	}
	if res.Canonical != "v1.2.3-rc.1" {
		t.Errorf("expected canonical v1.2.3-rc.1, got %s", res.Canonical)
	}
	if res.Prerelease != "-rc.1" {
		t.Errorf("expected prerelease -rc.1, got %s", res.Prerelease)
	}
}

func TestHandleCheck_GetInvalidVersion(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/check?v=1.2.3", nil)
	w := httptest.NewRecorder()

	h.HandleCheck(w, req)

	// Invalid versions are a valid check result, not a request error
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var res checker.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if res.Valid {
		t.Error("expected version to be invalid")
	}
	if res.Canonical != "" {
		t.Errorf("expected empty canonical, got %s", res.Canonical)
	}
}

func TestHandleCheck_GetMissingParameter(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/check", nil)
	w := httptest.NewRecorder()

	h.HandleCheck(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleCheck_Post(t *testing.T) {
	h := NewHandler()

	body := `{"versions": ["v1.0.0", "bogus", "v2.1"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleCheck(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp CheckResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(resp.Results))
	}
	if resp.Summary.Total != 3 || resp.Summary.Valid != 2 || resp.Summary.Invalid != 1 {
		t.Errorf("unexpected summary: %+v", resp.Summary)
	}
	if resp.Results[2].Canonical != "v2.1.0" {
		t.Errorf("expected canonical v2.1.0, got %s", resp.Results[2].Canonical)
	}
}

func TestHandleCheck_PostEmptyList(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(`{"versions": []}`))
	w := httptest.NewRecorder()

	h.HandleCheck(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleCheck_PostMalformedBody(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()

	h.HandleCheck(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleCheck_PostExceedsLimit(t *testing.T) {
	h := &Handler{maxBulkVersions: 2}

	body := `{"versions": ["v1.0.0", "v2.0.0", "v3.0.0"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleCheck(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleCheck_MethodNotAllowed(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodDelete, "/v1/check", nil)
	w := httptest.NewRecorder()

	h.HandleCheck(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestHandleCompare(t *testing.T) {
	h := NewHandler()

	tests := []struct {
		name       string
		query      string
		precedence int
		relation   string
	}{
		{"lower", "a=v1.0.0&b=v2.0.0", -1, "lower"},
		{"higher", "a=v2.0.0&b=v1.0.0", 1, "higher"},
		{"equal shorthand", "a=v1&b=v1.0.0", 0, "equal"},
		{"invalid below valid", "a=garbage&b=v0.0.1", -1, "lower"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/compare?"+tt.query, nil)
			w := httptest.NewRecorder()

			h.HandleCompare(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var c checker.Comparison
			if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if c.Precedence != tt.precedence {
				t.Errorf("expected precedence %d, got %d", tt.precedence, c.Precedence)
			}
			if c.Relation != tt.relation {
				t.Errorf("expected relation %s, got %s", tt.relation, c.Relation)
			}
		})
	}
}

func TestHandleCompare_MissingParameters(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/compare?a=v1.0.0", nil)
	w := httptest.NewRecorder()

	h.HandleCompare(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleCompare_MethodNotAllowed(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/compare", nil)
	w := httptest.NewRecorder()

	h.HandleCompare(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestHandleSort(t *testing.T) {
	h := NewHandler()

	body := `{"versions": ["v1.10.0", "v1.2.0", "v1.2.0-alpha", "junk"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/sort", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleSort(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp SortResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := []string{"junk", "v1.2.0-alpha", "v1.2.0", "v1.10.0"}
	if len(resp.Versions) != len(want) {
		t.Fatalf("expected %d versions, got %d", len(want), len(resp.Versions))
	}
	for i := range want {
		if resp.Versions[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], resp.Versions[i])
		}
	}

	if resp.Latest != "v1.10.0" {
		t.Errorf("expected latest v1.10.0, got %s", resp.Latest)
	}
}

func TestHandleSort_MethodNotAllowed(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/sort", nil)
	w := httptest.NewRecorder()

	h.HandleSort(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}
