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
	"sort"
	"strings"
)

// Compare returns -1, 0, or +1 depending on whether v sorts below, equal to,
// or above w in semantic version precedence order.
//
// Compare is total over arbitrary strings: an invalid version compares lower
// than any valid one, and all invalid versions compare equal to each other.
// Build metadata is ignored, so "v1.0.0+a" and "v1.0.0+b" compare equal.
func Compare(v, w string) int {
	pv, okv := parse(v)
	pw, okw := parse(w)
	if !okv && !okw {
		return 0
	}
	if !okv {
		return -1
	}
	if !okw {
		return +1
	}
	if c := compareNumber(pv.major, pw.major); c != 0 {
		return c
	}
	if c := compareNumber(pv.minor, pw.minor); c != 0 {
		return c
	}
	if c := compareNumber(pv.patch, pw.patch); c != 0 {
		return c
	}
	return comparePrerelease(pv.prerelease, pw.prerelease)
}

// Sort sorts list in ascending precedence order. Versions that compare equal
// (invalid strings, or versions differing only in build metadata) are ordered
// lexically so the result is deterministic.
func Sort(list []string) {
	sort.Sort(ByVersion(list))
}

// ByVersion implements sort.Interface for sorting version strings by
// precedence, with a lexical tie-break for equal-precedence entries.
type ByVersion []string

func (vs ByVersion) Len() int      { return len(vs) }
func (vs ByVersion) Swap(i, j int) { vs[i], vs[j] = vs[j], vs[i] }
func (vs ByVersion) Less(i, j int) bool {
	cmp := Compare(vs[i], vs[j])
	if cmp != 0 {
		return cmp < 0
	}
	return vs[i] < vs[j]
}

// compareNumber orders two digit strings numerically. Neither argument has
// leading zeros, so a shorter string is always the smaller number and
// equal-length strings order correctly byte-wise.
func compareNumber(x, y string) int {
	if x == y {
		return 0
	}
	if len(x) < len(y) {
		return -1
	}
	if len(x) > len(y) {
		return +1
	}
	if x < y {
		return -1
	}
	return +1
}

// comparePrerelease orders two prerelease suffixes (each either empty or
// starting with "-"). An empty suffix denotes a release, which outranks any
// prerelease of the same version core. Otherwise identifiers are compared
// pairwise left to right: numeric identifiers sort before alphanumeric ones,
// numeric pairs compare numerically, alphanumeric pairs byte-wise, and if one
// side runs out of identifiers first it sorts lower.
func comparePrerelease(x, y string) int {
	if x == y {
		return 0
	}
	if x == "" {
		return +1
	}
	if y == "" {
		return -1
	}
	for x != "" && y != "" {
		// drop the leading "-" or "."
		x = x[1:]
		y = y[1:]
		var ix, iy string
		ix, x = nextIdent(x)
		iy, y = nextIdent(y)
		if ix != iy {
			numx := allDigits(ix)
			numy := allDigits(iy)
			if numx != numy {
				if numx {
					return -1
				}
				return +1
			}
			if numx {
				if len(ix) < len(iy) {
					return -1
				}
				if len(ix) > len(iy) {
					return +1
				}
			}
			if ix < iy {
				return -1
			}
			return +1
		}
	}
	if x == "" {
		return -1
	}
	return +1
}

// nextIdent splits off the identifier before the first dot. The rest keeps
// its leading dot so the caller's skip-one-byte step stays uniform.
func nextIdent(s string) (ident, rest string) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}
