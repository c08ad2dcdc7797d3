/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semv/pkg/checker"
)

// SortReport is the serialized output of the sort command.
type SortReport struct {
	Versions []string `json:"versions" yaml:"versions"`
	Latest   string   `json:"latest,omitempty" yaml:"latest,omitempty"`
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort versions by precedence",
		ArgsUsage:             "[VERSION...]",
		Description: `Sort semantic version strings in ascending precedence order.

Sorting follows semantic versioning precedence rules. Invalid versions
sort before all valid ones, and versions with equal precedence (such as
v1.0.0+a and v1.0.0+b) keep a stable lexical order. The report also
includes the canonical form of the highest valid version.

# Examples

Sort versions from arguments:
  semv sort v1.10.0 v1.2.0 v1.2.0-alpha

Sort versions from a file, highest first:
  semv sort --input versions.txt --reverse

Sort from stdin:
  git tag | semv sort --input -`,
		Flags: []cli.Flag{
			inputFlag,
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Sort in descending order, highest precedence first",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			versions, err := collectVersions(cmd)
			if err != nil {
				return err
			}

			sorted := checker.SortedCopy(versions)
			if cmd.Bool("reverse") {
				for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
					sorted[i], sorted[j] = sorted[j], sorted[i]
				}
			}

			report := SortReport{
				Versions: sorted,
				Latest:   checker.Latest(versions),
			}
			slog.Debug("sorted versions", "count", len(report.Versions), "latest", report.Latest)

			return writeOutput(ctx, cmd, report)
		},
	}
}
