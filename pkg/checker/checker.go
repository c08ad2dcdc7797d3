// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package checker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/semv/pkg/defaults"
	"github.com/NVIDIA/semv/pkg/semver"
)

// Result holds everything the surfaces report about one candidate string.
// Component fields are empty when the input is invalid or the component is
// absent.
type Result struct {
	Input      string `json:"input" yaml:"input"`
	Valid      bool   `json:"valid" yaml:"valid"`
	Canonical  string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Major      string `json:"major,omitempty" yaml:"major,omitempty"`
	MajorMinor string `json:"majorMinor,omitempty" yaml:"majorMinor,omitempty"`
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Build      string `json:"build,omitempty" yaml:"build,omitempty"`
}

// Summary aggregates a batch of results.
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

// Comparison reports the precedence relation between two candidate strings.
// Precedence is -1, 0, or +1; Relation is the human-readable rendering of
// the same fact ("lower", "equal", "higher").
type Comparison struct {
	A          string `json:"a" yaml:"a"`
	B          string `json:"b" yaml:"b"`
	Precedence int    `json:"precedence" yaml:"precedence"`
	Relation   string `json:"relation" yaml:"relation"`
}

// Check evaluates a single candidate string and returns its result record.
func Check(v string) Result {
	res := Result{Input: v, Valid: semver.IsValid(v)}
	if !res.Valid {
		checksTotal.WithLabelValues(outcomeInvalid).Inc()
		return res
	}

	res.Canonical = semver.Canonical(v)
	res.Major = semver.Major(v)
	res.MajorMinor = semver.MajorMinor(v)
	res.Prerelease = semver.Prerelease(v)
	res.Build = semver.Build(v)

	checksTotal.WithLabelValues(outcomeValid).Inc()
	return res
}

// CheckAll evaluates a batch of candidate strings with bounded concurrency.
// Results are returned in input order. The only error condition is context
// cancellation; individual invalid versions are reported in their Result,
// not as errors.
func CheckAll(ctx context.Context, versions []string) ([]Result, error) {
	results := make([]Result, len(versions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaults.CheckConcurrency)
	for i, v := range versions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Check(v)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Summarize counts valid and invalid entries in a batch of results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Valid {
			s.Valid++
		} else {
			s.Invalid++
		}
	}
	return s
}

// CompareVersions orders two candidate strings by semantic version
// precedence. Invalid strings compare below any valid version and equal to
// each other, so the result is defined for arbitrary input.
func CompareVersions(a, b string) Comparison {
	comparesTotal.Inc()

	c := Comparison{A: a, B: b, Precedence: semver.Compare(a, b)}
	switch {
	case c.Precedence < 0:
		c.Relation = "lower"
	case c.Precedence > 0:
		c.Relation = "higher"
	default:
		c.Relation = "equal"
	}
	return c
}

// SortedCopy returns a new slice with the entries ordered by ascending
// precedence. The input slice is not modified.
func SortedCopy(versions []string) []string {
	sortsTotal.Inc()

	sorted := make([]string, len(versions))
	copy(sorted, versions)
	semver.Sort(sorted)
	return sorted
}

// Latest returns the canonical form of the highest-precedence valid version
// in the list, or the empty string if the list holds no valid version.
func Latest(versions []string) string {
	latest := ""
	for _, v := range versions {
		if !semver.IsValid(v) {
			continue
		}
		if latest == "" {
			latest = semver.Canonical(v)
			continue
		}
		latest = semver.Max(latest, v)
	}
	return latest
}
