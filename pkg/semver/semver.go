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

// parsed holds the decomposed fields of a valid version string. The major,
// minor, and patch fields are bare digit runs; prerelease and build keep
// their leading "-" and "+" markers. The short field records the canonical
// suffix implied by a shorthand form (".0.0" for vMAJOR, ".0" for
// vMAJOR.MINOR) so Canonical can reconstruct the full form without
// re-deriving it.
type parsed struct {
	major      string
	minor      string
	patch      string
	short      string
	prerelease string
	build      string
}

// IsValid reports whether v is a valid semantic version string.
func IsValid(v string) bool {
	_, ok := parse(v)
	return ok
}

// Canonical returns the canonical form of the version v: shorthand components
// are filled in with zeros and build metadata is stripped. It returns the
// empty string if v is not a valid version.
func Canonical(v string) string {
	p, ok := parse(v)
	if !ok {
		return ""
	}
	if p.build != "" {
		return v[:len(v)-len(p.build)]
	}
	if p.short != "" {
		return v + p.short
	}
	return v
}

// Major returns the major version prefix of v, including the leading "v"
// (for example, Major("v2.1.0") == "v2"). It returns the empty string if v
// is not a valid version.
func Major(v string) string {
	p, ok := parse(v)
	if !ok {
		return ""
	}
	return "v" + p.major
}

// MajorMinor returns the major.minor version prefix of v, including the
// leading "v" (for example, MajorMinor("v2.1.3") == "v2.1"). It returns the
// empty string if v is not a valid version.
func MajorMinor(v string) string {
	p, ok := parse(v)
	if !ok {
		return ""
	}
	return "v" + p.major + "." + p.minor
}

// Prerelease returns the prerelease suffix of v including the leading hyphen
// (for example, Prerelease("v1.2.3-rc.1") == "-rc.1"). It returns the empty
// string if v has no prerelease or is not a valid version.
func Prerelease(v string) string {
	p, ok := parse(v)
	if !ok {
		return ""
	}
	return p.prerelease
}

// Build returns the build metadata suffix of v including the leading plus
// sign (for example, Build("v1.2.3+meta") == "+meta"). It returns the empty
// string if v has no build metadata or is not a valid version.
func Build(v string) string {
	p, ok := parse(v)
	if !ok {
		return ""
	}
	return p.build
}

// Max canonicalizes both arguments and returns the one with higher
// precedence. An invalid argument canonicalizes to the empty string and
// loses to any valid one.
func Max(v, w string) string {
	v = Canonical(v)
	w = Canonical(w)
	if Compare(v, w) > 0 {
		return v
	}
	return w
}

// parse decomposes v in a single left-to-right pass. It reports ok=false on
// the first violation; no partial results escape. A valid input decomposes
// losslessly into "v" + major ["." + minor ["." + patch [prerelease] [build]]]
// with no characters left over.
func parse(v string) (p parsed, ok bool) {
	if v == "" || v[0] != 'v' {
		return
	}
	p.major, v, ok = scanNumber(v[1:])
	if !ok {
		return
	}
	if v == "" {
		// vMAJOR shorthand
		p.minor = "0"
		p.patch = "0"
		p.short = ".0.0"
		return
	}
	if v[0] != '.' {
		ok = false
		return
	}
	p.minor, v, ok = scanNumber(v[1:])
	if !ok {
		return
	}
	if v == "" {
		// vMAJOR.MINOR shorthand
		p.patch = "0"
		p.short = ".0"
		return
	}
	if v[0] != '.' {
		ok = false
		return
	}
	p.patch, v, ok = scanNumber(v[1:])
	if !ok {
		return
	}
	if len(v) > 0 && v[0] == '-' {
		p.prerelease, v, ok = scanPrerelease(v)
		if !ok {
			return
		}
	}
	if len(v) > 0 && v[0] == '+' {
		p.build, v, ok = scanBuild(v)
		if !ok {
			return
		}
	}
	if v != "" {
		ok = false
		return
	}
	ok = true
	return
}

// scanNumber consumes a maximal run of digits from the front of v. The run
// must be non-empty and must not start with a superfluous leading zero
// ("0" is fine, "01" is not).
func scanNumber(v string) (t, rest string, ok bool) {
	if v == "" || v[0] < '0' || v[0] > '9' {
		return
	}
	i := 1
	for i < len(v) && '0' <= v[i] && v[i] <= '9' {
		i++
	}
	if v[0] == '0' && i != 1 {
		return
	}
	return v[:i], v[i:], true
}

// scanPrerelease consumes a "-" followed by dot-separated identifiers,
// stopping before any "+" that starts build metadata. Each identifier must
// be non-empty and drawn from [0-9A-Za-z-], and a fully numeric identifier
// must not have a leading zero.
func scanPrerelease(v string) (t, rest string, ok bool) {
	i := 1
	start := 1
	for i < len(v) && v[i] != '+' {
		if !isIdentChar(v[i]) && v[i] != '.' {
			return
		}
		if v[i] == '.' {
			if start == i || numericWithLeadingZero(v[start:i]) {
				return
			}
			start = i + 1
		}
		i++
	}
	if start == i || numericWithLeadingZero(v[start:i]) {
		return
	}
	return v[:i], v[i:], true
}

// scanBuild consumes a "+" followed by dot-separated identifiers. Build
// identifiers have no numeric restriction; leading zeros are allowed.
func scanBuild(v string) (t, rest string, ok bool) {
	i := 1
	start := 1
	for i < len(v) {
		if !isIdentChar(v[i]) && v[i] != '.' {
			return
		}
		if v[i] == '.' {
			if start == i {
				return
			}
			start = i + 1
		}
		i++
	}
	if start == i {
		return
	}
	return v[:i], v[i:], true
}

func isIdentChar(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '-'
}

// numericWithLeadingZero reports whether s is an all-digit identifier with a
// superfluous leading zero, which the prerelease grammar forbids.
func numericWithLeadingZero(s string) bool {
	return len(s) > 1 && s[0] == '0' && allDigits(s)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
