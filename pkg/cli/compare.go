// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-sorter/pkg/header"
	"github.com/NVIDIA/version-sorter/pkg/versionsort"
)

// CompareResult is the output of the compare command.
type CompareResult struct {
	header.Header `json:",inline" yaml:",inline"`

	A      string `json:"a" yaml:"a"`
	B      string `json:"b" yaml:"b"`
	Result int    `json:"result" yaml:"result"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two versions",
		ArgsUsage:             "A B",
		Description: `Compare two versions in natural order.

The result is -1 when A orders before B, 1 when it orders after,
and 0 when neither orders first.

Examples:
  vsort compare 1.9 1.10
  vsort compare --format yaml 2.0.0-rc1 2.0.0`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("compare requires exactly 2 arguments, got %d", cmd.Args().Len())
			}

			a, b := cmd.Args().Get(0), cmd.Args().Get(1)
			res := CompareResult{
				A:      a,
				B:      b,
				Result: versionsort.Compare(a, b),
			}
			res.Init(header.KindCompareResult, version)

			return writeResult(ctx, cmd, res)
		},
	}
}
