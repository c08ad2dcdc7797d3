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

// Package checker builds structured results on top of the semver package for
// the CLI and API surfaces.
//
// Where pkg/semver answers questions about one string at a time with bare
// strings and integers, this package assembles those answers into result
// records (input, validity, canonical form, extracted components), processes
// batches with bounded concurrency, and tracks operation counters for the
// Prometheus endpoint.
//
// # Usage
//
// Check a single candidate:
//
//	res := checker.Check("v1.2.3-rc.1")
//	if !res.Valid {
//	    // handle invalid input
//	}
//
// Check a batch:
//
//	results, err := checker.CheckAll(ctx, versions)
//	summary := checker.Summarize(results)
//
// Compare and order:
//
//	cmp := checker.CompareVersions("v1.2.3", "v1.3.0")
//	sorted := checker.SortedCopy(versions)
//	latest := checker.Latest(versions)
package checker
