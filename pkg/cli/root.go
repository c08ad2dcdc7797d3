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

	"github.com/NVIDIA/semv/pkg/logging"
	"github.com/NVIDIA/semv/pkg/serializer"
)

const (
	name           = "semv"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   "Output format: yaml, json, table",
	}

	inputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Read versions from file, one per line ('-' for stdin)",
	}
)

// Run executes the CLI with the provided arguments and blocks until done.
func Run(ctx context.Context, args []string) error {
	logging.SetDefaultStructuredLogger(name, version)

	cmd := &cli.Command{
		Name:    name,
		Usage:   "Validate, compare, and sort semantic version strings",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Commands: []*cli.Command{
			checkCmd(),
			compareCmd(),
			sortCmd(),
			canonicalCmd(),
			latestCmd(),
		},
	}

	return cmd.Run(ctx, args)
}

// parseOutputFormat resolves the output format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %v)", f, serializer.SupportedFormats())
	}
	return f, nil
}

// collectVersions gathers versions from positional arguments and,
// when the input flag is set, from the referenced file.
func collectVersions(cmd *cli.Command) ([]string, error) {
	versions := cmd.Args().Slice()

	if input := cmd.String("input"); input != "" {
		lines, err := serializer.ReadLines(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read versions from %q: %w", input, err)
		}
		versions = append(versions, lines...)
	}

	if len(versions) == 0 {
		return nil, fmt.Errorf("no versions provided: pass them as arguments or via --input")
	}

	return versions, nil
}

// writeOutput serializes data to the configured output and format.
func writeOutput(ctx context.Context, cmd *cli.Command, data any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, data); err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}

	return nil
}
