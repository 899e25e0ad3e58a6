// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ugraph/builder"
	"github.com/katalvlaran/ugraph/core"
)

// ErrNoStart is returned when neither --start nor the document names a start node.
var ErrNoStart = errors.New("no start node: document is empty and --start not set")

// bfsOptions holds flags of the bfs subcommand.
type bfsOptions struct {
	file  string
	start int
	json  bool
}

func newBFSCmd(root *rootOptions) *cobra.Command {
	opts := &bfsOptions{}

	cmd := &cobra.Command{
		Use:   "bfs -f FILE",
		Short: "Run a breadth-first traversal over a graph document",
		Long: `Load a YAML graph document and print the breadth-first visitation order.

One diagnostic record per visited node is written to stderr.

Examples:
  ugraph bfs -f graph.yaml
  ugraph bfs -f graph.yaml --start 3 --json
  ugraph gen grid 3 3 | ugraph bfs -f -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBFS(cmd, root, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Graph document path ('-' for stdin)")
	cmd.Flags().IntVar(&opts.start, "start", 0, "Start node id (default: document start or first node)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the order as a JSON array")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBFS(cmd *cobra.Command, root *rootOptions, opts *bfsOptions) error {
	doc, err := loadDocument(cmd, opts.file)
	if err != nil {
		return err
	}
	g, err := doc.Build()
	if err != nil {
		return err
	}

	startID, ok := doc.StartID()
	if cmd.Flags().Changed("start") {
		startID, ok = opts.start, true
	}
	if !ok {
		return ErrNoStart
	}
	start, found := g.Lookup(startID)
	if !found {
		return fmt.Errorf("start node %d: %w", startID, builder.ErrUnknownNode)
	}

	visited := g.BFS(start, core.WithLogger(root.logger))
	ids := make([]int, len(visited))
	for i, n := range visited {
		ids[i] = n.ID()
	}

	out := cmd.OutOrStdout()
	if opts.json {
		return json.NewEncoder(out).Encode(ids)
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	_, err = fmt.Fprintln(out, strings.Join(parts, " "))

	return err
}

// loadDocument decodes the document at path, or stdin for "-".
func loadDocument(cmd *cobra.Command, path string) (*builder.Document, error) {
	if path == "-" {
		return builder.DecodeDocument(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph document: %w", err)
	}
	defer f.Close()

	return builder.DecodeDocument(f)
}
