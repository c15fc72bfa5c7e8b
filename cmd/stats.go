package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/pipeline"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Overview of habits, goals, and streaks",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	habits := a.habits.List()
	goals := a.goals.List()
	today := a.today()
	s := pipeline.Summarize(habits, today, a.cfg.General.Days)

	fmt.Println()
	fmt.Println(cli.RenderTitle("RADAR  " + model.FormatDate(today)))
	fmt.Println()

	var goalsDone, goalsOverdue int
	for _, g := range goals {
		switch g.Status(today) {
		case model.GoalCompleted:
			goalsDone++
		case model.GoalOverdue:
			goalsOverdue++
		}
	}

	rows := [][]string{
		{"Active habits", formatNumber(int64(s.ActiveHabits))},
		{"Done today", fmt.Sprintf("%d/%d", s.CompletedToday, s.ActiveHabits)},
		{"Current streak", cli.FormatStreak(s.CurrentStreak)},
		{"Best streak", formatNumber(int64(s.BestStreak))},
		{"---"},
		{"Total completions", formatNumber(int64(s.TotalCompletions))},
		{fmt.Sprintf("%d-day completions", s.WindowDays), formatNumber(int64(s.WindowCompletions))},
		{fmt.Sprintf("%d-day average", s.WindowDays), cli.FormatWholePercent(s.WindowAverage)},
		{"---"},
		{"Goals", formatNumber(int64(len(goals)))},
		{"Goals completed", formatNumber(int64(goalsDone))},
		{"Goals overdue", formatNumber(int64(goalsOverdue))},
	}
	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"Metric", "Value"}, Rows: rows}))

	if len(habits) > 0 {
		days := pipeline.AggregateDays(habits, today, s.WindowDays)
		values := make([]float64, len(days))
		for i, d := range days {
			values[i] = d.Percent
		}
		fmt.Println()
		fmt.Printf("  Last %d days  %s\n", s.WindowDays, cli.RenderSparkline(values))
	}
	fmt.Println()
	return nil
}
