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

package semver

import (
	"strings"
	"testing"
)

// FuzzParse exercises the parser and the accessors built on it with arbitrary
// inputs and checks the invariants that must hold for any string.
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("v1")
	f.Add("v1.2")
	f.Add("v1.2.3")
	f.Add("v0")
	f.Add("v0.0.0")
	f.Add("v1.2.3-alpha.1")
	f.Add("v1.2.3-0.3.7")
	f.Add("v1.2.3+build5")
	f.Add("v1.2.3-rc.1+build.11")
	f.Add("")
	f.Add("v")
	f.Add("1.2.3")
	f.Add("v01.2.3")
	f.Add("v1..2")
	f.Add("v1.2.3-")
	f.Add("v1.2.3-01")
	f.Add("v1.2.3+")
	f.Add("v1.2.3-alpha..")
	f.Add("v1-alpha")
	f.Add("v99999999999999999999.1.2")
	f.Add("v1.2.3 ")

	f.Fuzz(func(t *testing.T, input string) {
		// None of the accessors may panic, whatever the input.
		valid := IsValid(input)
		canonical := Canonical(input)
		major := Major(input)
		majorMinor := MajorMinor(input)
		pre := Prerelease(input)
		build := Build(input)

		if !valid {
			// Invalid inputs yield the invalid marker everywhere.
			for name, got := range map[string]string{
				"Canonical":  canonical,
				"Major":      major,
				"MajorMinor": majorMinor,
				"Prerelease": pre,
				"Build":      build,
			} {
				if got != "" {
					t.Errorf("%s(%q) = %q, want empty for invalid input", name, input, got)
				}
			}
			return
		}

		// The canonical form is itself valid and canonicalizes to itself.
		if !IsValid(canonical) {
			t.Errorf("Canonical(%q) = %q is not valid", input, canonical)
		}
		if again := Canonical(canonical); again != canonical {
			t.Errorf("Canonical not idempotent for %q: %q != %q", input, again, canonical)
		}

		// Canonicalization preserves precedence and drops build metadata.
		if Compare(input, canonical) != 0 {
			t.Errorf("Compare(%q, Canonical=%q) != 0", input, canonical)
		}
		if Build(canonical) != "" {
			t.Errorf("Canonical(%q) = %q retains build metadata", input, canonical)
		}

		// Component prefixes nest: v starts with MajorMinor, which starts with Major.
		if !strings.HasPrefix(majorMinor, major) {
			t.Errorf("MajorMinor(%q) = %q does not extend Major %q", input, majorMinor, major)
		}
		if !strings.HasPrefix(canonical, majorMinor) {
			t.Errorf("Canonical(%q) = %q does not extend MajorMinor %q", input, canonical, majorMinor)
		}

		// A version is equal to itself and build metadata never changes that.
		if Compare(input, input) != 0 {
			t.Errorf("Compare(%q, %q) != 0", input, input)
		}
	})
}

// FuzzCompare checks ordering laws for arbitrary string pairs.
func FuzzCompare(f *testing.F) {
	f.Add("v1.0.0", "v1.0.1")
	f.Add("v1.0.0-alpha", "v1.0.0")
	f.Add("v1", "v1.0.0")
	f.Add("junk", "v1.0.0")
	f.Add("junk", "more junk")
	f.Add("v1.2.3-10", "v1.2.3-9")
	f.Add("v1.2.3-rc.1", "v1.2.3-rc.1.1")

	f.Fuzz(func(t *testing.T, a, b string) {
		ab := Compare(a, b)
		ba := Compare(b, a)
		if ab < -1 || ab > 1 {
			t.Errorf("Compare(%q, %q) = %d, outside {-1,0,1}", a, b, ab)
		}
		if sign(ab) != -sign(ba) {
			t.Errorf("Compare(%q, %q) = %d but Compare(%q, %q) = %d", a, b, ab, b, a, ba)
		}
		if Compare(a, a) != 0 || Compare(b, b) != 0 {
			t.Errorf("Compare is not reflexive for %q / %q", a, b)
		}
	})
}
