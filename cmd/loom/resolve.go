package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loom/internal/manifest"
	"loom/internal/snapshot"
	"loom/internal/term/transform"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] book.mp",
	Short: "Resolve constructor names in rule patterns",
	Long:  `Resolve loads a book snapshot and a constructor manifest, rewrites every pattern variable that names a declared constructor into a constructor pattern, and writes the book back`,
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().String("ctrs", "loom.toml", "constructor manifest")
	resolveCmd.Flags().StringP("output", "o", "", "output snapshot path (default: in place)")
	resolveCmd.Flags().Int("jobs", 0, "parallel workers (0 = all CPUs, 1 = sequential)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	inPath := args[0]
	ctrsPath, _ := cmd.Flags().GetString("ctrs")
	outPath, _ := cmd.Flags().GetString("output")
	jobs, _ := cmd.Flags().GetInt("jobs")
	if outPath == "" {
		outPath = inPath
	}

	book, err := snapshot.Read(inPath)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	ctrs, err := manifest.Load(ctrsPath)
	if err != nil {
		return fmt.Errorf("load constructors: %w", err)
	}

	if jobs == 1 {
		transform.ResolveCtrs(book, ctrs.Has)
	} else if err := transform.ResolveCtrsParallel(cmd.Context(), book, ctrs.Has, jobs); err != nil {
		return err
	}

	if err := snapshot.Write(outPath, book); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
