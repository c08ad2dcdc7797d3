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

	"github.com/NVIDIA/semv/pkg/checker"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare the precedence of two versions",
		ArgsUsage:             "VERSION_A VERSION_B",
		Description: `Compare two semantic version strings by precedence.

The comparison follows semantic versioning precedence rules:
  - Major, minor, then patch are compared numerically
  - A prerelease sorts below its release (v1.0.0-rc.1 < v1.0.0)
  - Numeric prerelease identifiers sort below alphanumeric ones
  - Build metadata is ignored (v1.0.0+a equals v1.0.0+b)
  - Invalid versions sort below all valid versions
  - Two invalid versions compare as equal

The result reports precedence (-1, 0, or 1) and the relation of the
first version to the second (lower, equal, or higher).

# Examples

Compare two releases:
  semv compare v1.2.3 v1.2.4

Prerelease against its release:
  semv compare v1.0.0-rc.1 v1.0.0

Output as JSON:
  semv compare v1.2.3 v1.2.4 -t json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("expected exactly 2 versions, got %d", len(args))
			}

			c := checker.CompareVersions(args[0], args[1])
			slog.Debug("compared versions", "a", c.A, "b", c.B, "relation", c.Relation)

			return writeOutput(ctx, cmd, c)
		},
	}
}
