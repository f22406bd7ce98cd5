/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/vercmp/pkg/oci"
)

// imageResult is the serialized output of the image command.
type imageResult struct {
	Left     string `json:"left" yaml:"left"`
	Right    string `json:"right" yaml:"right"`
	Result   int    `json:"result" yaml:"result"`
	Relation string `json:"relation" yaml:"relation"`
}

func imageCmd() *cli.Command {
	return &cli.Command{
		Name:                  "image",
		EnableShellCompletion: true,
		Usage:                 "Compare the tags of two container image references",
		ArgsUsage:             "LEFT_REF RIGHT_REF",
		Description: `Parse two container image references, extract their tags, and compare
the tags as version strings. Both references must carry a tag, e.g.:

  vercmp image nvcr.io/nvidia/cuda:12.4.1 nvcr.io/nvidia/cuda:12.3.2

Digest-only references are rejected.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected exactly 2 arguments (LEFT_REF RIGHT_REF), got %d", cmd.Args().Len())
			}

			left := cmd.Args().Get(0)
			right := cmd.Args().Get(1)

			result, err := oci.CompareTags(left, right)
			if err != nil {
				return fmt.Errorf("error comparing image references: %w", err)
			}

			return writeResult(ctx, cmd, &imageResult{
				Left:     left,
				Right:    right,
				Result:   result,
				Relation: relationName(result),
			})
		},
	}
}
