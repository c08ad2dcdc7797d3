/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semv/pkg/semver"
)

// CanonicalEntry maps an input version to its canonical form.
// Canonical is empty when the input is not a valid version.
type CanonicalEntry struct {
	Input     string `json:"input" yaml:"input"`
	Canonical string `json:"canonical" yaml:"canonical"`
}

func canonicalCmd() *cli.Command {
	return &cli.Command{
		Name:                  "canonical",
		EnableShellCompletion: true,
		Usage:                 "Print the canonical form of versions",
		ArgsUsage:             "[VERSION...]",
		Description: `Print the canonical form of each semantic version string.

The canonical form always has major, minor, and patch components and keeps
any prerelease suffix, while build metadata is dropped:

  v1          -> v1.0.0
  v1.2        -> v1.2.0
  v1.2.3-rc.1 -> v1.2.3-rc.1
  v1.2.3+meta -> v1.2.3

Invalid versions produce an empty canonical form and, unless
--skip-invalid is set, cause the command to fail.

# Examples

Canonicalize shorthand versions:
  semv canonical v1 v1.2

Canonicalize a file of versions, ignoring invalid entries:
  semv canonical --input versions.txt --skip-invalid`,
		Flags: []cli.Flag{
			inputFlag,
			&cli.BoolFlag{
				Name:  "skip-invalid",
				Usage: "Ignore invalid versions instead of failing",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			versions, err := collectVersions(cmd)
			if err != nil {
				return err
			}

			entries := make([]CanonicalEntry, 0, len(versions))
			invalid := 0
			for _, v := range versions {
				c := semver.Canonical(v)
				if c == "" {
					invalid++
					if cmd.Bool("skip-invalid") {
						continue
					}
				}
				entries = append(entries, CanonicalEntry{Input: v, Canonical: c})
			}

			slog.Debug("canonicalized versions", "count", len(entries), "invalid", invalid)

			if err := writeOutput(ctx, cmd, entries); err != nil {
				return err
			}

			if invalid > 0 && !cmd.Bool("skip-invalid") {
				return fmt.Errorf("%d of %d versions are invalid", invalid, len(versions))
			}

			return nil
		},
	}
}
