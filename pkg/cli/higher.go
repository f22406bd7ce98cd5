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

// higherResult is the serialized output of the higher command.
type higherResult struct {
	Left   string `json:"left" yaml:"left"`
	Right  string `json:"right" yaml:"right"`
	Higher string `json:"higher" yaml:"higher"`
}

func higherCmd() *cli.Command {
	return &cli.Command{
		Name:                  "higher",
		EnableShellCompletion: true,
		Usage:                 "Print the higher of two version strings",
		ArgsUsage:             "LEFT RIGHT",
		Description: `Compare two version strings and print the one that orders higher.
When the two versions are equivalent, the left one is returned.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected exactly 2 arguments (LEFT RIGHT), got %d", cmd.Args().Len())
			}

			left := cmd.Args().Get(0)
			right := cmd.Args().Get(1)

			higher, err := vercmpversion.Higher(left, right)
			if err != nil {
				return fmt.Errorf("error comparing versions: %w", err)
			}

			return writeResult(ctx, cmd, &higherResult{
				Left:   left,
				Right:  right,
				Higher: higher,
			})
		},
	}
}
