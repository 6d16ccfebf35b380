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

// TokenizeResult is the output of the tokenize command.
type TokenizeResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Results []TokenizedVersion `json:"results" yaml:"results"`
}

// TokenizedVersion lists the components of one input.
type TokenizedVersion struct {
	Input      string                  `json:"input" yaml:"input"`
	Components []versionsort.Component `json:"components" yaml:"components"`
}

func tokenizeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "tokenize",
		EnableShellCompletion: true,
		Usage:                 "Show how versions split into components",
		ArgsUsage:             "VERSION...",
		Description: `Print the number and text components each version is compared by.

Examples:
  vsort tokenize v1.10-rc2
  vsort tokenize --format table 1.0 1.0.0`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("tokenize requires at least 1 argument")
			}

			results := make([]TokenizedVersion, 0, cmd.Args().Len())
			for _, in := range cmd.Args().Slice() {
				comps := versionsort.Tokenize(in)
				if comps == nil {
					comps = []versionsort.Component{}
				}
				results = append(results, TokenizedVersion{Input: in, Components: comps})
			}

			res := TokenizeResult{Results: results}
			res.Init(header.KindTokenizeResult, version)

			return writeResult(ctx, cmd, res)
		},
	}
}
