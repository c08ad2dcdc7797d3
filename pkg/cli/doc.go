// Package cli implements the command-line interface for the semv tool.
//
// # Overview
//
// The semv CLI provides commands for validating, comparing, canonicalizing,
// and sorting semantic version strings. Versions use the form
// vMAJOR[.MINOR[.PATCH[-PRERELEASE][+BUILD]]] with a mandatory leading "v",
// matching the convention used by Go module versions.
//
// # Commands
//
// check - Validate version strings:
//
//	semv check v1.2.3 v1.2 not-a-version
//	semv check --input versions.txt --fail-on-invalid
//
// Reports validity and decomposition (canonical form, major, major.minor,
// prerelease, build) for each version. Output defaults to stdout in YAML.
//
// compare - Compare two versions:
//
//	semv compare v1.2.3 v1.2.4
//
// Reports the precedence relation between two versions. Build metadata is
// ignored, prereleases sort below their release, and invalid versions sort
// below all valid ones.
//
// sort - Sort versions by precedence:
//
//	semv sort v1.10.0 v1.2.0 v1.2.0-alpha
//	semv sort --input versions.txt --reverse
//
// canonical - Print canonical forms:
//
//	semv canonical v1.2 v2
//
// latest - Print the highest version:
//
//	semv latest v1.0.0 v1.2.0 v0.9.0
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Input Sources
//
// Commands that accept multiple versions read them from positional
// arguments and, with --input, from a file with one version per line.
// Blank lines and lines starting with # are skipped. Use "-" to read
// from stdin:
//
//	cat versions.txt | semv sort --input -
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/semver - Version parsing and comparison
//   - pkg/checker - Validation and decomposition results
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/semv/pkg/cli.version=1.0.0'"
package cli
