package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bogie-dev/bogie/internal/categorize"
	"github.com/bogie-dev/bogie/internal/model"
	"github.com/bogie-dev/bogie/internal/pipeline"
)

func newImportCommand() *cobra.Command {
	var dir string
	var dialect string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a statement export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(dir, dialect, args[0])
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&dialect, "dialect", "bog", "statement export dialect")

	return cmd
}

func runImport(dir, dialect, file string) error {
	e, err := newEnv(dir)
	if err != nil {
		return err
	}

	merchants, err := e.merchants.Load()
	if err != nil {
		return err
	}
	engine := categorize.NewEngine(e.rules, merchants)

	parser := e.parsers(engine).Get(dialect)
	if parser == nil {
		return fmt.Errorf("unknown dialect %q", dialect)
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return err
	}

	keys, err := e.dedup.Load()
	if err != nil {
		return err
	}
	queue, err := e.queue.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Parsing %s\n", file)
	fmt.Printf("  %d transaction(s) found\n", len(txns))

	result := pipeline.Import(txns, engine, keys, queue)
	if result.Duplicates > 0 {
		fmt.Printf("  %d duplicate(s) skipped\n", result.Duplicates)
	}
	if len(result.Auto) == 0 && result.QueuedNew == 0 {
		fmt.Println("  Nothing new.")
		return nil
	}

	color.Green("\nAuto-categorized: %d", len(result.Auto))
	for _, t := range result.AutoTotals() {
		fmt.Printf("  %-16s %10s %s\n", t.Category, t.Amount.StringFixed(2), t.Currency)
	}

	color.Yellow("\nFlagged for review: %d", len(result.Queue))
	printQueue(result.Queue)

	// All in-memory processing succeeded; persist the snapshots.
	if err := e.ledger.Append(result.AutoEntries()); err != nil {
		return err
	}
	if err := e.queue.Save(result.Queue); err != nil {
		return err
	}
	if err := e.dedup.Save(result.Keys); err != nil {
		return err
	}

	fmt.Printf("\nSaved %d expense(s), %d new item(s) flagged\n", len(result.Auto), result.QueuedNew)
	if len(result.Queue) > 0 {
		fmt.Println("To approve flagged items: bogie approve 1=Food 2=skip ...")
	}
	return nil
}

func printQueue(items []model.ReviewItem) {
	for i, it := range items {
		fmt.Printf("  [%2d] %s | %8s %s | [%s] %s\n",
			i+1, it.Date.Format("2006-01-02"),
			it.Amount.StringFixed(2), it.Currency, it.Flag, it.Description)
	}
}
