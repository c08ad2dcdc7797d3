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

// Package semver implements parsing, validation, and precedence comparison of
// semantic version strings.
//
// # Overview
//
// A version string has the form vMAJOR[.MINOR[.PATCH[-PRERELEASE][+BUILD]]],
// following Semantic Versioning 2.0.0 (semver.org) with two deviations:
//
//   - The leading "v" is mandatory. "1.2.3" is not a valid version.
//   - Shorthand forms are accepted: "v1" is equivalent to "v1.0.0" and
//     "v1.2" is equivalent to "v1.2.0".
//
// Every function in this package is a pure transformation of its string
// arguments. Functions that extract a component return the empty string when
// the input is not a valid version; none of them return errors or panic.
//
// # Usage
//
// Validate and canonicalize:
//
//	semver.IsValid("v1.2.3-alpha.1") // true
//	semver.Canonical("v1.2")         // "v1.2.0"
//	semver.Canonical("v1.2.3+meta")  // "v1.2.3"
//
// Extract components:
//
//	semver.Major("v1.2.3")      // "v1"
//	semver.MajorMinor("v1.2.3") // "v1.2"
//	semver.Prerelease("v1.2.3-rc.1+build5") // "-rc.1"
//	semver.Build("v1.2.3-rc.1+build5")      // "+build5"
//
// Compare and sort:
//
//	semver.Compare("v1.0.0-rc.1", "v1.0.0") // -1
//	semver.Sort(tags)
//
// # Precedence
//
// Compare orders versions by major, minor, and patch numbers, then by
// prerelease identifiers. A version without a prerelease has higher precedence
// than any prerelease of the same major.minor.patch. Within prereleases,
// identifiers are compared left to right: numeric identifiers sort before
// alphanumeric ones, numeric identifiers compare numerically, alphanumeric
// ones byte-wise, and when one identifier list is a prefix of the other the
// shorter list sorts first. Build metadata never affects precedence.
//
// Compare is total over all strings, not just valid versions: invalid strings
// compare equal to each other and lower than every valid version. This lets
// Sort order a mixed list without failing.
//
// # Validation Rules
//
// Major, minor, and patch are decimal numbers with no leading zeros ("0" is
// valid, "01" is not). Prerelease and build suffixes are dot-separated lists
// of non-empty identifiers drawn from [0-9A-Za-z-]; a fully numeric prerelease
// identifier must not have a leading zero. Any leftover characters after the
// recognized grammar make the whole string invalid.
package semver
