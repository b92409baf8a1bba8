// Package commands wires the bogie CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bogie-dev/bogie/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bogie",
		Short:   "Bank of Georgia statement triage",
		Long:    "Import BoG statement exports, auto-categorize expenses, and review the rest.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newImportCommand(),
		newFlaggedCommand(),
		newApproveCommand(),
		newReportCommand(),
	)

	return rootCmd
}
