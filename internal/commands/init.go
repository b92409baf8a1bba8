package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bogie-dev/bogie/internal/categorize"
	"github.com/bogie-dev/bogie/internal/config"
	"github.com/bogie-dev/bogie/internal/ledger"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a bogie data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir)
		},
	}
	return cmd
}

func runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Write bogie.yaml with defaults.
	if err := config.Save(filepath.Join(dir, config.FileName), config.Default()); err != nil {
		return err
	}

	// Write the built-in rule tables so they are editable in place.
	if err := categorize.SaveRules(filepath.Join(dir, config.RulesFile), categorize.DefaultRules()); err != nil {
		return err
	}

	// Start the ledger with its header so downstream consumers can read
	// it before the first import.
	ledgerPath := filepath.Join(dir, config.LedgerFile)
	if _, err := os.Stat(ledgerPath); os.IsNotExist(err) {
		if err := os.WriteFile(ledgerPath, []byte(ledger.Header+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing ledger: %w", err)
		}
	}

	fmt.Printf("Initialized bogie data directory at %s\n", dir)
	return nil
}
