package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vladimirfedorov/memctx/memctx"
)

func init() {
	rootCmd.AddCommand(newCatCmd())
}

func newCatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Print a file's contents through a memory context",
		Long: `The cat command round-trips a file through a memory context: the file is
loaded into a dedicated file block, written to stdout, and the block is
released again.

Example:
  memctl cat notes.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(cmd.OutOrStdout(), args[0])
		},
	}
	return cmd
}

func runCat(w io.Writer, path string) error {
	ctx := memctx.New()
	defer ctx.Release()

	data, err := ctx.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	if _, err := w.Write(data); err != nil {
		return err
	}
	ctx.ReleaseFile(data)
	return nil
}
