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

// comparisonResult is the serialized output of the compare command.
type comparisonResult struct {
	Left     string `json:"left" yaml:"left"`
	Right    string `json:"right" yaml:"right"`
	Result   int    `json:"result" yaml:"result"`
	Relation string `json:"relation" yaml:"relation"`
	Higher   string `json:"higher" yaml:"higher"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two version strings",
		ArgsUsage:             "LEFT RIGHT",
		Description: `Compare two version strings segment by segment and report the result:
  -1 - left orders before right
   0 - left and right are equivalent
   1 - left orders after right

Versions are split on runs of non-alphanumeric characters. Numeric
segments compare by value with no precision limit, alphabetic segments
compare case-insensitively, and a longer version wins a tie on the
shared prefix.

The result can be output in JSON, YAML, or table format.`,
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

			result, err := vercmpversion.Compare(left, right)
			if err != nil {
				return fmt.Errorf("error comparing versions: %w", err)
			}

			higher := left
			if result < 0 {
				higher = right
			}

			return writeResult(ctx, cmd, &comparisonResult{
				Left:     left,
				Right:    right,
				Result:   result,
				Relation: relationName(result),
				Higher:   higher,
			})
		},
	}
}

// relationName maps a ternary comparison result to a human-readable relation.
func relationName(result int) string {
	switch {
	case result > 0:
		return "higher"
	case result < 0:
		return "lower"
	default:
		return "same"
	}
}
