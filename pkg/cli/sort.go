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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-sorter/pkg/defaults"
	"github.com/NVIDIA/version-sorter/pkg/header"
	"github.com/NVIDIA/version-sorter/pkg/keys"
	"github.com/NVIDIA/version-sorter/pkg/serializer"
	"github.com/NVIDIA/version-sorter/pkg/source"
	"github.com/NVIDIA/version-sorter/pkg/versionsort"
)

// SortResult is the output of the sort and rsort commands.
type SortResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Order    versionsort.Direction `json:"order" yaml:"order"`
	Versions []string              `json:"versions" yaml:"versions"`
	Indices  []uint32              `json:"indices" yaml:"indices"`
}

func sortCmd() *cli.Command {
	return newSortCmd("sort", "Sort versions in ascending natural order", versionsort.Ascending)
}

func rsortCmd() *cli.Command {
	return newSortCmd("rsort", "Sort versions in descending natural order", versionsort.Descending)
}

func newSortCmd(cmdName, usage string, dir versionsort.Direction) *cli.Command {
	return &cli.Command{
		Name:                  cmdName,
		EnableShellCompletion: true,
		Usage:                 usage,
		ArgsUsage:             "[VERSION...]",
		Description: fmt.Sprintf(`Sort versions given as arguments or read from --input sources.

Inputs may be local files, http(s) URLs, or "-" for stdin. A source holding
a JSON array or a YAML sequence contributes its elements; any other source
contributes one entry per non-blank line. With no arguments and no --input,
entries are read from stdin. Sources have no size limit unless --max-entries
is set.

Entries can be ordered by a derived key instead of their full text:
  --key PATH     value at a JSON path within each entry (e.g. "version")
  --image-tag    tag of a container image reference (e.g. nvcr.io/nvidia/cuda:12.4.1)

Examples:
  vsort %[1]s 1.10 1.9 1.2
  git tag | vsort %[1]s --format yaml
  vsort %[1]s --image-tag -i images.txt`, cmdName),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   `read entries from a file, URL, or "-" for stdin (repeatable)`,
			},
			&cli.StringFlag{
				Name:  "key",
				Usage: "order JSON entries by the value at this gjson path",
			},
			&cli.BoolFlag{
				Name:  "image-tag",
				Usage: "order container image references by their tag",
			},
			&cli.BoolFlag{
				Name:  "indices",
				Usage: "print only the index permutation",
			},
			&cli.IntFlag{
				Name:  "max-entries",
				Usage: "reject an --input source with more entries than this (0 for no limit)",
			},
			&cli.DurationFlag{
				Name:  "http-timeout",
				Value: defaults.HTTPClientTimeout,
				Usage: "total timeout for fetching an http(s) --input source",
			},
			&cli.BoolFlag{
				Name:  "insecure",
				Usage: "skip TLS certificate verification for https --input sources",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			keyFn, err := keyFuncFromCmd(cmd)
			if err != nil {
				return err
			}

			entries, err := collectEntries(ctx, cmd)
			if err != nil {
				return err
			}

			sortKeys, err := keys.Extract(entries, keyFn)
			if err != nil {
				return fmt.Errorf("failed to extract sort keys: %w", err)
			}

			indices := versionsort.SortIndices(sortKeys, dir)
			slog.Debug("sorted entries", "order", dir, "count", len(indices))

			if cmd.Bool("indices") {
				return writeResult(ctx, cmd, indices)
			}

			sorted := make([]string, len(indices))
			for i, idx := range indices {
				sorted[i] = entries[idx]
			}

			res := SortResult{
				Order:    dir,
				Versions: sorted,
				Indices:  indices,
			}
			res.Init(header.KindSortResult, version)

			return writeResult(ctx, cmd, res)
		},
	}
}

func keyFuncFromCmd(cmd *cli.Command) (keys.Func, error) {
	path := cmd.String("key")
	imageTag := cmd.Bool("image-tag")

	switch {
	case path != "" && imageTag:
		return nil, fmt.Errorf("--key and --image-tag are mutually exclusive")
	case path != "":
		return keys.JSONPath(path), nil
	case imageTag:
		return keys.ImageTag, nil
	default:
		return keys.Identity, nil
	}
}

// collectEntries returns the positional arguments followed by the entries of
// every --input source. Stdin is used when neither is given.
func collectEntries(ctx context.Context, cmd *cli.Command) ([]string, error) {
	entries := cmd.Args().Slice()
	inputs := cmd.StringSlice("input")
	if len(entries) == 0 && len(inputs) == 0 {
		inputs = []string{source.Stdin}
	}
	if len(inputs) == 0 {
		return entries, nil
	}

	if n := cmd.Int("max-entries"); n < 0 {
		return nil, fmt.Errorf("--max-entries must not be negative, got %d", n)
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.CLIInputTimeout)
	defer cancel()

	loader := source.NewLoader(
		source.WithStdin(cmd.Root().Reader),
		source.WithMaxEntries(cmd.Int("max-entries")),
		source.WithHttpReader(serializer.NewHttpReader(
			serializer.WithUserAgent(name+"/"+version),
			serializer.WithTotalTimeout(cmd.Duration("http-timeout")),
			serializer.WithInsecureSkipVerify(cmd.Bool("insecure")),
		)),
	)
	loaded, err := loader.LoadAll(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to load input: %w", err)
	}

	return append(entries, loaded...), nil
}
