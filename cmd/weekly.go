package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/pipeline"
)

var flagWeeklyWeeks int

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Weekly completion rollup (weeks start Sunday)",
	RunE:  runWeekly,
}

func init() {
	weeklyCmd.Flags().IntVarP(&flagWeeklyWeeks, "weeks", "w", 0, "Weeks to show (default from config)")
	rootCmd.AddCommand(weeklyCmd)
}

func runWeekly(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	habits := a.habits.List()
	if len(habits) == 0 {
		fmt.Println("\n  No habits yet.")
		return nil
	}

	n := flagWeeklyWeeks
	if n <= 0 {
		n = a.cfg.General.Weeks
	}
	weeks := pipeline.AggregateWeeks(habits, a.today(), n)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WEEKLY COMPLETION  Last %d weeks", n)))
	fmt.Println()

	var completed, possible int
	rows := make([][]string, 0, len(weeks)+2)
	for i, w := range weeks {
		completed += w.Completed
		possible += w.Possible
		rows = append(rows, []string{
			fmt.Sprintf("Week %d", i+1),
			cli.FormatShortDate(w.WeekStart),
			fmt.Sprintf("%d/%d", w.Completed, w.Possible),
			cli.RenderRatioBar(w.Rate(), 14),
		})
	}
	rows = append(rows, []string{"---"})
	total := 0.0
	if possible > 0 {
		total = float64(completed) / float64(possible)
	}
	rows = append(rows, []string{"Total", "", fmt.Sprintf("%d/%d", completed, possible), cli.FormatPercent(total)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Week", "Starts", "Done", "Rate"},
		Rows:    rows,
	}))
	return nil
}
