package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vladimirfedorov/memctx/memctx"
)

var dumpPageSize int

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpPageSize, "page-size", 0, "Block page size in bytes (default memctx.DefaultPageSize)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>...",
		Short: "Load files into a memory context and dump its block chain",
		Long: `The dump command loads each file into one memory context as a file block
and prints the resulting block chain, one line per block: record address,
capacity, consumed bytes, data pointer, and the next record's address.

Example:
  memctl dump notes.txt
  memctl dump --page-size 8192 a.bin b.bin`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.OutOrStdout(), args)
		},
	}
	return cmd
}

func runDump(w io.Writer, paths []string) error {
	ctx := memctx.NewWithPageSize(dumpPageSize)
	defer ctx.Release()

	for _, path := range paths {
		printVerbose("Loading file: %s\n", path)
		data, err := ctx.OpenFile(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		printVerbose("  %d bytes\n", len(data))
	}

	_, err := io.WriteString(w, ctx.Describe())
	return err
}
