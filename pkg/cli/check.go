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

// CheckReport is the serialized output of the check command.
type CheckReport struct {
	Results []checker.Result `json:"results" yaml:"results"`
	Summary checker.Summary  `json:"summary" yaml:"summary"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Validate semantic version strings",
		ArgsUsage:             "[VERSION...]",
		Description: `Validate one or more semantic version strings and report their decomposition.

Versions use the form vMAJOR[.MINOR[.PATCH[-PRERELEASE][+BUILD]]] with a
mandatory leading "v". Minor and patch may be omitted and default to zero,
so "v1" and "v1.2" are valid shorthands for "v1.0.0" and "v1.2.0".

For each version the result includes:
  valid       - whether the version parses
  canonical   - canonical form without build metadata (e.g. v1.2.0)
  major       - major prefix (e.g. v1)
  majorMinor  - major.minor prefix (e.g. v1.2)
  prerelease  - prerelease suffix including "-" (e.g. -rc.1)
  build       - build suffix including "+" (e.g. +meta)

Invalid versions report valid: false with all other fields empty.

# Examples

Check versions from arguments:
  semv check v1.2.3 v1.2.3-rc.1+build5 not-a-version

Check versions from a file, one per line:
  semv check --input versions.txt

Fail with a non-zero exit code when any version is invalid (useful for CI/CD):
  semv check --input versions.txt --fail-on-invalid

Output as JSON to a file:
  semv check v1.2.3 -t json -o results.json`,
		Flags: []cli.Flag{
			inputFlag,
			&cli.BoolFlag{
				Name:  "fail-on-invalid",
				Usage: "Exit with non-zero status if any version is invalid",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			versions, err := collectVersions(cmd)
			if err != nil {
				return err
			}

			slog.Debug("checking versions", "count", len(versions))

			results, err := checker.CheckAll(ctx, versions)
			if err != nil {
				return fmt.Errorf("failed to check versions: %w", err)
			}

			report := CheckReport{
				Results: results,
				Summary: checker.Summarize(results),
			}

			if err := writeOutput(ctx, cmd, report); err != nil {
				return err
			}

			slog.Info("check completed",
				"total", report.Summary.Total,
				"valid", report.Summary.Valid,
				"invalid", report.Summary.Invalid)

			if cmd.Bool("fail-on-invalid") && report.Summary.Invalid > 0 {
				return fmt.Errorf("%d of %d versions are invalid", report.Summary.Invalid, report.Summary.Total)
			}

			return nil
		},
	}
}
