// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ugraph/builder"
)

// genOptions holds flags of the gen subcommand.
type genOptions struct {
	offset int
}

// sizedTopologies maps single-size topology names to constructors.
var sizedTopologies = map[string]func(n int) builder.Constructor{
	"path":     builder.Path,
	"cycle":    builder.Cycle,
	"star":     builder.Star,
	"complete": builder.Complete,
}

func newGenCmd() *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen TOPOLOGY SIZE...",
		Short: "Generate a graph document for a standard topology",
		Long: `Generate a YAML graph document.

Topologies:
  path N, cycle N, star N, complete N
  grid ROWS COLS

Examples:
  ugraph gen cycle 6
  ugraph gen grid 3 4 --offset 100`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, opts, args)
		},
	}
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "Shift every generated node id")

	return cmd
}

func runGen(cmd *cobra.Command, opts *genOptions, args []string) error {
	sizes := make([]int, 0, len(args)-1)
	for _, a := range args[1:] {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", a, err)
		}
		sizes = append(sizes, n)
	}

	var ctor builder.Constructor
	switch name := args[0]; {
	case name == "grid":
		if len(sizes) != 2 {
			return fmt.Errorf("grid needs ROWS COLS, got %d size(s)", len(sizes))
		}
		ctor = builder.Grid(sizes[0], sizes[1])
	case sizedTopologies[name] != nil:
		if len(sizes) != 1 {
			return fmt.Errorf("%s needs exactly one size, got %d", name, len(sizes))
		}
		ctor = sizedTopologies[name](sizes[0])
	default:
		return fmt.Errorf("unknown topology %q", name)
	}

	topo := builder.NewTopology()
	if err := builder.Apply(topo, []builder.BuilderOption{builder.WithIDOffset(opts.offset)}, ctor); err != nil {
		return err
	}

	return builder.FromTopology(topo, nil).Encode(cmd.OutOrStdout())
}
