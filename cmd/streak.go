package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/pipeline"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Overall and per-habit streaks",
	RunE:  runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	habits := a.habits.List()
	today := a.today()

	fmt.Println()
	fmt.Printf("  Overall streak: %s\n", cli.FormatStreak(pipeline.OverallStreak(habits, today)))
	fmt.Println()
	if len(habits) == 0 {
		return nil
	}

	digests := make([]model.HabitStats, 0, len(habits))
	for _, h := range habits {
		digests = append(digests, pipeline.DigestHabit(h, today))
	}
	sort.SliceStable(digests, func(i, j int) bool {
		if digests[i].CurrentStreak != digests[j].CurrentStreak {
			return digests[i].CurrentStreak > digests[j].CurrentStreak
		}
		return digests[i].BestStreak > digests[j].BestStreak
	})

	rows := make([][]string, 0, len(digests))
	for _, d := range digests {
		rows = append(rows, []string{d.Name, cli.FormatStreak(d.CurrentStreak), formatNumber(int64(d.BestStreak))})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Habit", "Current", "Best"},
		Rows:    rows,
	}))
	return nil
}
