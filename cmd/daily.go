package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/pipeline"
)

var flagDailyDays int

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily completion table",
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().IntVarP(&flagDailyDays, "days", "n", 0, "Days to show (default from config)")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
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

	n := flagDailyDays
	if n <= 0 {
		n = a.cfg.General.Days
	}
	days := pipeline.AggregateDays(habits, a.today(), n)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY COMPLETION  Last %dd", n)))
	fmt.Println()

	// Most recent first, like a log.
	rows := make([][]string, 0, len(days))
	for i := len(days) - 1; i >= 0; i-- {
		d := days[i]
		rows = append(rows, []string{
			model.FormatDate(d.Date),
			cli.FormatDayOfWeek(int(d.Date.Weekday())),
			fmt.Sprintf("%d/%d", d.Completed, d.Total),
			cli.RenderRatioBar(d.Percent/100, 10),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Done", "Rate"},
		Rows:    rows,
	}))
	return nil
}
