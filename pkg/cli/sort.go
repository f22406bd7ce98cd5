/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	vercmpversion "github.com/NVIDIA/vercmp/pkg/version"
)

// sortedResult is the serialized output of the sort command.
type sortedResult struct {
	Versions []string `json:"versions" yaml:"versions"`
	Count    int      `json:"count" yaml:"count"`
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort version strings in ascending order",
		ArgsUsage:             "VERSION [VERSION...]",
		Description: `Sort the given version strings in ascending order. Equivalent versions
keep their relative argument order.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("expected at least 1 version argument")
			}

			versions := vercmpversion.Versions(cmd.Args().Slice())

			// Surface invalid entries before sorting, Less cannot report them.
			for _, v := range versions {
				if _, err := vercmpversion.Compare(v, v); err != nil {
					return fmt.Errorf("error sorting versions: %w", err)
				}
			}

			sort.Stable(versions)

			return writeResult(ctx, cmd, &sortedResult{
				Versions: versions,
				Count:    len(versions),
			})
		},
	}
}
