/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	vercmpversion "github.com/NVIDIA/vercmp/pkg/version"
)

// selectionResult is the serialized output of the highest command.
type selectionResult struct {
	Highest string `json:"highest" yaml:"highest"`
	Count   int    `json:"count" yaml:"count"`
}

func highestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "highest",
		EnableShellCompletion: true,
		Usage:                 "Select the highest of the given version strings",
		ArgsUsage:             "VERSION [VERSION...]",
		Description: `Compare all given version strings and print the one that orders highest.
Ties resolve to the earliest argument.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("expected at least 1 version argument")
			}

			versions := cmd.Args().Slice()

			highest, err := vercmpversion.Highest(versions...)
			if err != nil {
				return fmt.Errorf("error selecting highest version: %w", err)
			}

			return writeResult(ctx, cmd, &selectionResult{
				Highest: highest,
				Count:   len(versions),
			})
		},
	}
}
