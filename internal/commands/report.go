package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bogie-dev/bogie/internal/report"
)

func newReportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize tracked spending from the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")

	return cmd
}

func runReport(dir string) error {
	e, err := newEnv(dir)
	if err != nil {
		return err
	}

	entries, err := e.ledger.ReadAll()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("Ledger is empty, nothing to report.")
		return nil
	}

	conv := report.NewConverter(e.cfg.Report.Rates)
	summary, err := report.Build(entries, conv, e.cfg.Report.Currency)
	if err != nil {
		return err
	}

	color.Cyan("EXPENSE TRACKING")
	fmt.Printf("Period: %s - %s (%.1f weeks), rates as of %s\n",
		summary.Start.Format("Jan 02"), summary.End.Format("Jan 02"),
		summary.Weeks, conv.AsOf())

	fmt.Printf("\nPer month, normalized (%s):\n", summary.Currency)
	for _, c := range summary.Categories {
		fmt.Printf("  %-16s %10s/mo  (total %s)\n", c.Category, c.PerMonth.StringFixed(2), c.Total.StringFixed(2))
	}
	fmt.Printf("  %s\n", "---------------------------------")
	fmt.Printf("  %-16s %10s/mo\n", "Baseline", summary.PerMonth.StringFixed(2))
	return nil
}
