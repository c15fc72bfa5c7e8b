package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/pipeline"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Habit count per category",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	habits := a.habits.List()
	cats := pipeline.AggregateCategories(habits)
	if len(cats) == 0 {
		fmt.Println("\n  No habits yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CATEGORIES"))
	fmt.Println()

	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{
			c.Category,
			formatNumber(int64(c.Habits)),
			cli.FormatPercent(float64(c.Habits) / float64(len(habits))),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Habits", "Share"},
		Rows:    rows,
	}))

	fmt.Println()
	maxHabits := float64(cats[0].Habits)
	for _, c := range cats {
		fmt.Println(cli.RenderHorizontalBar(fmt.Sprintf("%-18s", c.Category), float64(c.Habits), maxHabits, 30))
	}
	fmt.Println()
	return nil
}
