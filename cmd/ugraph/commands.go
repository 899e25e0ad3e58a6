// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// rootOptions carries flags shared by every subcommand.
type rootOptions struct {
	logLevel string
	logger   *slog.Logger
	stderr   io.Writer
}

// newRootCmd assembles the command tree writing results to stdout and
// diagnostics to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "ugraph",
		Short: "Build and traverse undirected graphs",
		Long: `ugraph works with YAML graph documents:

  nodes: [{id: 0, value: ...}, ...]
  edges: [[0, 1], ...]
  start: 0   # optional

Subcommands:
  bfs  - breadth-first traversal of a document
  gen  - generate a document for a standard topology`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogger()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info",
		"Diagnostic log level: debug, info, warn, error")

	rootCmd.AddCommand(newBFSCmd(opts), newGenCmd())

	return rootCmd
}

// setupLogger installs a text slog handler on stderr at the requested level.
func (o *rootOptions) setupLogger() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	o.logger = slog.New(slog.NewTextHandler(o.stderr, &slog.HandlerOptions{Level: level}))

	return nil
}
