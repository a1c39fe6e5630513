package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"loom/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "Inspect and transform loom program books",
	Long:  `loom reads book snapshots produced by the compiler pipeline and runs the term-level passes and dumps on them`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
