package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bogie-dev/bogie/internal/model"
)

func newFlaggedCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "flagged",
		Short: "List items awaiting review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlagged(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")

	return cmd
}

func runFlagged(dir string) error {
	e, err := newEnv(dir)
	if err != nil {
		return err
	}

	items, err := e.queue.Load()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		color.Green("No flagged items.")
		return nil
	}

	color.Yellow("Flagged items (%d):\n", len(items))
	printQueue(items)
	fmt.Printf("\nCategories: %s\n", model.CategoryList())
	fmt.Println("Usage: bogie approve 1=Food 2=skip ...")
	return nil
}
