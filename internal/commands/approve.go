package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bogie-dev/bogie/internal/review"
)

func newApproveCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "approve <N=Category|N=skip> ...",
		Short: "Approve or skip flagged items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApprove(dir, args)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")

	return cmd
}

func runApprove(dir string, tokens []string) error {
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

	result := review.Apply(items, tokens)
	for _, d := range result.Decisions {
		switch {
		case d.Err != nil:
			color.Yellow("  ! %v", d.Err)
		case d.Skip:
			fmt.Printf("  [%d] Skipped: %s\n", d.Index, d.Item.Description)
		case d.Item.Merchant != "":
			fmt.Printf("  [%d] %s -> %s (learned: %s)\n", d.Index, d.Item.Description, d.Category, d.Item.Merchant)
		default:
			fmt.Printf("  [%d] %s -> %s\n", d.Index, d.Item.Description, d.Category)
		}
	}

	// One consistent snapshot, persisted once after the whole batch.
	if err := e.ledger.Append(result.Approved); err != nil {
		return err
	}
	if err := e.queue.Save(result.Remaining); err != nil {
		return err
	}
	if len(result.Learned) > 0 {
		merchants, err := e.merchants.Load()
		if err != nil {
			return err
		}
		for merchant, category := range result.Learned {
			merchants.Learn(merchant, category)
		}
		if err := e.merchants.Save(merchants); err != nil {
			return err
		}
	}

	if len(result.Approved) > 0 {
		fmt.Printf("\nSaved %d expense(s)\n", len(result.Approved))
	}
	if len(result.Remaining) > 0 {
		color.Yellow("%d item(s) still flagged", len(result.Remaining))
	} else {
		color.Green("All items reviewed.")
	}
	return nil
}
