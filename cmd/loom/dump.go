package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loom/internal/diag"
	"loom/internal/snapshot"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] book.mp",
	Short: "Pretty-print a book snapshot",
	Long:  `Dump loads a book snapshot, checks its referential integrity and prints every definition in surface syntax`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().Bool("no-validate", false, "skip integrity checks before printing")
	dumpCmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
}

func runDump(cmd *cobra.Command, args []string) error {
	book, err := snapshot.Read(args[0])
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	skip, _ := cmd.Flags().GetBool("no-validate")
	if !skip {
		maxDiagnostics, _ := cmd.Flags().GetInt("max-diagnostics")
		bag := diag.NewBag(maxDiagnostics)
		book.Validate(bag)
		if bag.Len() > 0 {
			bag.Sort()
			diag.Pretty(os.Stderr, bag, diag.PrettyOpts{Color: useColor(cmd, os.Stderr)})
		}
		if bag.HasErrors() {
			return fmt.Errorf("book failed integrity checks")
		}
	}

	fmt.Fprintln(os.Stdout, book.Display())
	return nil
}
