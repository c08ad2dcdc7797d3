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

// LatestReport is the serialized output of the latest command.
type LatestReport struct {
	Latest string `json:"latest" yaml:"latest"`
	Total  int    `json:"total" yaml:"total"`
}

func latestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "latest",
		EnableShellCompletion: true,
		Usage:                 "Print the highest version by precedence",
		ArgsUsage:             "[VERSION...]",
		Description: `Print the canonical form of the highest version by precedence.

Invalid versions are ignored. The command fails when no valid versions
are found.

# Examples

Find the latest release:
  semv latest v1.0.0 v1.2.0 v0.9.0

Find the latest tag in a repository:
  git tag | semv latest --input -`,
		Flags: []cli.Flag{
			inputFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			versions, err := collectVersions(cmd)
			if err != nil {
				return err
			}

			latest := checker.Latest(versions)
			if latest == "" {
				return fmt.Errorf("no valid versions among %d inputs", len(versions))
			}

			slog.Debug("found latest version", "latest", latest, "total", len(versions))

			return writeOutput(ctx, cmd, LatestReport{
				Latest: latest,
				Total:  len(versions),
			})
		},
	}
}
