/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/semv/pkg/checker"
)

// runToFile runs the CLI with JSON output to a temp file and
// returns the file contents.
func runToFile(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()

	out := filepath.Join(t.TempDir(), "out.json")

	// Flags must precede positional arguments.
	full := []string{"semv", args[0], "--format", "json", "--output", out}
	full = append(full, args[1:]...)

	runErr := Run(context.Background(), full)

	data, readErr := os.ReadFile(out)
	if readErr != nil && runErr == nil {
		t.Fatalf("failed to read output file: %v", readErr)
	}
	return data, runErr
}

func TestCheckCommand(t *testing.T) {
	data, err := runToFile(t, "check", "v1.2.3", "v1.2", "not-a-version")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}

	var report CheckReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	if report.Summary.Total != 3 || report.Summary.Valid != 2 || report.Summary.Invalid != 1 {
		t.Errorf("unexpected summary: %+v", report.Summary)
	}
	if report.Results[1].Canonical != "v1.2.0" {
		t.Errorf("expected canonical v1.2.0, got %s", report.Results[1].Canonical)
	}
	if report.Results[2].Valid {
		t.Error("expected not-a-version to be invalid")
	}
}

func TestCheckCommand_FailOnInvalid(t *testing.T) {
	_, err := runToFile(t, "check", "--fail-on-invalid", "v1.0.0", "bogus")
	if err == nil {
		t.Fatal("expected error for invalid version with --fail-on-invalid")
	}
	if !strings.Contains(err.Error(), "invalid") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckCommand_NoVersions(t *testing.T) {
	_, err := runToFile(t, "check")
	if err == nil {
		t.Fatal("expected error when no versions provided")
	}
}

func TestCompareCommand(t *testing.T) {
	data, err := runToFile(t, "compare", "v1.2.3", "v1.2.4")
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	var c checker.Comparison
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("failed to decode comparison: %v", err)
	}

	if c.Precedence != -1 {
		t.Errorf("expected precedence -1, got %d", c.Precedence)
	}
	if c.Relation != "lower" {
		t.Errorf("expected relation lower, got %s", c.Relation)
	}
}

func TestCompareCommand_WrongArgCount(t *testing.T) {
	if _, err := runToFile(t, "compare", "v1.0.0"); err == nil {
		t.Error("expected error for single argument")
	}
	if _, err := runToFile(t, "compare", "v1.0.0", "v2.0.0", "v3.0.0"); err == nil {
		t.Error("expected error for three arguments")
	}
}

func TestSortCommand(t *testing.T) {
	data, err := runToFile(t, "sort", "v1.10.0", "v1.2.0", "v1.2.0-alpha")
	if err != nil {
		t.Fatalf("sort failed: %v", err)
	}

	var report SortReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	want := []string{"v1.2.0-alpha", "v1.2.0", "v1.10.0"}
	for i := range want {
		if report.Versions[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], report.Versions[i])
		}
	}
	if report.Latest != "v1.10.0" {
		t.Errorf("expected latest v1.10.0, got %s", report.Latest)
	}
}

func TestSortCommand_Reverse(t *testing.T) {
	data, err := runToFile(t, "sort", "--reverse", "v1.0.0", "v2.0.0", "v0.5.0")
	if err != nil {
		t.Fatalf("sort failed: %v", err)
	}

	var report SortReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	want := []string{"v2.0.0", "v1.0.0", "v0.5.0"}
	for i := range want {
		if report.Versions[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], report.Versions[i])
		}
	}
}

func TestCanonicalCommand(t *testing.T) {
	data, err := runToFile(t, "canonical", "v1", "v1.2", "v1.2.3-rc.1+meta")
	if err != nil {
		t.Fatalf("canonical failed: %v", err)
	}

	var entries []CanonicalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("failed to decode entries: %v", err)
	}

	want := []string{"v1.0.0", "v1.2.0", "v1.2.3-rc.1"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i := range want {
		if entries[i].Canonical != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], entries[i].Canonical)
		}
	}
}

func TestCanonicalCommand_InvalidFails(t *testing.T) {
	if _, err := runToFile(t, "canonical", "v1.0.0", "garbage"); err == nil {
		t.Error("expected error for invalid version")
	}
}

func TestCanonicalCommand_SkipInvalid(t *testing.T) {
	data, err := runToFile(t, "canonical", "--skip-invalid", "v1.0.0", "garbage")
	if err != nil {
		t.Fatalf("canonical failed: %v", err)
	}

	var entries []CanonicalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("failed to decode entries: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Canonical != "v1.0.0" {
		t.Errorf("expected v1.0.0, got %s", entries[0].Canonical)
	}
}

func TestLatestCommand(t *testing.T) {
	data, err := runToFile(t, "latest", "v1.0.0", "v1.2.0", "v0.9.0", "junk")
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}

	var report LatestReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	if report.Latest != "v1.2.0" {
		t.Errorf("expected latest v1.2.0, got %s", report.Latest)
	}
	if report.Total != 4 {
		t.Errorf("expected total 4, got %d", report.Total)
	}
}

func TestLatestCommand_NoValidVersions(t *testing.T) {
	if _, err := runToFile(t, "latest", "junk", "garbage"); err == nil {
		t.Error("expected error when no valid versions")
	}
}

func TestLatestCommand_FromFile(t *testing.T) {
	versionsFile := filepath.Join(t.TempDir(), "versions.txt")
	if err := os.WriteFile(versionsFile, []byte("v1.0.0\nv3.0.0\nv2.0.0\n"), 0600); err != nil {
		t.Fatalf("failed to write versions file: %v", err)
	}

	data, err := runToFile(t, "latest", "--input", versionsFile)
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}

	var report LatestReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	if report.Latest != "v3.0.0" {
		t.Errorf("expected latest v3.0.0, got %s", report.Latest)
	}
}
