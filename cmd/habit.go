package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/pipeline"
)

var (
	flagHabitCategory string
	flagHabitColor    string
	flagHabitName     string
	flagEditCategory  string
	flagEditColor     string
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits",
}

var habitAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a habit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHabitAdd,
}

var habitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits with today's status and streaks",
	RunE:    runHabitList,
}

var habitRmCmd = &cobra.Command{
	Use:   "rm <habit>",
	Short: "Delete a habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitRm,
}

var habitDoneCmd = &cobra.Command{
	Use:   "done <habit> [date]",
	Short: "Toggle a habit's completion for a day (default today)",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runHabitDone,
}

var habitEditCmd = &cobra.Command{
	Use:   "edit <habit>",
	Short: "Rename or recategorize a habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitEdit,
}

var habitShowCmd = &cobra.Command{
	Use:   "show <habit>",
	Short: "Show a habit's streaks and recent weeks",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitShow,
}

func init() {
	habitAddCmd.Flags().StringVarP(&flagHabitCategory, "category", "c", model.HabitCategories[0], "Category")
	habitAddCmd.Flags().StringVar(&flagHabitColor, "color", model.Palette[0], "Display color (hex)")

	habitEditCmd.Flags().StringVar(&flagHabitName, "name", "", "New name")
	habitEditCmd.Flags().StringVarP(&flagEditCategory, "category", "c", "", "New category")
	habitEditCmd.Flags().StringVar(&flagEditColor, "color", "", "New display color (hex)")

	habitCmd.AddCommand(habitAddCmd, habitListCmd, habitRmCmd, habitDoneCmd, habitEditCmd, habitShowCmd)
	rootCmd.AddCommand(habitCmd)
}

func runHabitAdd(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	h, err := a.habits.Add(strings.Join(args, " "), flagHabitCategory, flagHabitColor)
	if err != nil {
		return err
	}
	fmt.Printf("  Added %q (%s) [%s]\n", h.Name, h.Category, cli.ShortID(h.ID))
	return nil
}

func runHabitList(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	habits := a.habits.List()
	if len(habits) == 0 {
		fmt.Println("\n  No habits yet. Add one with `radar habit add <name>`.")
		return nil
	}

	today := a.today()
	todayKey := model.FormatDate(today)

	fmt.Println()
	fmt.Println(cli.RenderTitle("HABITS  " + todayKey))
	fmt.Println()

	rows := make([][]string, 0, len(habits))
	for _, h := range habits {
		hs := pipeline.DigestHabit(h, today)
		rows = append(rows, []string{
			cli.FormatCheck(h.CompletedOn(todayKey)) + " " + h.Name,
			h.Category,
			cli.FormatStreak(hs.CurrentStreak),
			strconv.Itoa(hs.BestStreak),
			fmt.Sprintf("%d/7", hs.WeeklyCount),
			cli.FormatNumber(int64(hs.TotalDays)),
			cli.ShortID(h.ID),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Habit", "Category", "Streak", "Best", "Week", "Total", "ID"},
		Rows:    rows,
	}))
	return nil
}

func runHabitRm(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	h, err := a.findHabit(args[0])
	if err != nil {
		return err
	}
	if err := a.habits.Remove(h.ID); err != nil {
		return err
	}
	fmt.Printf("  Removed %q\n", h.Name)
	return nil
}

func runHabitDone(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	h, err := a.findHabit(args[0])
	if err != nil {
		return err
	}
	day, err := a.dayArg(args, 1)
	if err != nil {
		return err
	}

	done, err := a.habits.ToggleCompletion(h.ID, day)
	if err != nil {
		return err
	}
	updated, err := a.habits.Get(h.ID)
	if err != nil {
		return err
	}

	if done {
		fmt.Printf("  %s %s on %s  %s\n", cli.FormatCheck(true), h.Name, model.FormatDate(day),
			cli.FormatStreak(pipeline.CurrentStreak(updated, day)))
	} else {
		fmt.Printf("  %s %s unmarked for %s\n", cli.FormatCheck(false), h.Name, model.FormatDate(day))
	}
	return nil
}

func runHabitEdit(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	h, err := a.findHabit(args[0])
	if err != nil {
		return err
	}

	var patch model.HabitPatch
	if cmd.Flags().Changed("name") {
		patch.Name = &flagHabitName
	}
	if cmd.Flags().Changed("category") {
		patch.Category = &flagEditCategory
	}
	if cmd.Flags().Changed("color") {
		patch.Color = &flagEditColor
	}
	if patch == (model.HabitPatch{}) {
		return fmt.Errorf("nothing to change: pass --name, --category, or --color")
	}

	updated, err := a.habits.Update(h.ID, patch)
	if err != nil {
		return err
	}
	fmt.Printf("  Updated %q (%s)\n", updated.Name, updated.Category)
	return nil
}

func runHabitShow(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	h, err := a.findHabit(args[0])
	if err != nil {
		return err
	}
	today := a.today()
	hs := pipeline.DigestHabit(h, today)

	fmt.Println()
	fmt.Println(cli.RenderTitle(strings.ToUpper(h.Name)))
	fmt.Println()
	fmt.Printf("  Category:        %s\n", h.Category)
	fmt.Printf("  Created:         %s\n", model.FormatDate(h.CreatedAt.Local()))
	fmt.Printf("  Current streak:  %s\n", cli.FormatStreak(hs.CurrentStreak))
	fmt.Printf("  Best streak:     %d\n", hs.BestStreak)
	fmt.Printf("  This week:       %d/7  %s\n", hs.WeeklyCount, cli.RenderProgressBar(hs.WeeklyCount, 7, 14))
	fmt.Printf("  Total days:      %s\n", cli.FormatNumber(int64(hs.TotalDays)))
	fmt.Println()

	// Last four weeks, one row per Sunday-started week.
	headers := []string{"Week"}
	for d := 0; d < 7; d++ {
		headers = append(headers, cli.FormatDayOfWeek(d))
	}
	start := model.AddDays(model.StartOfWeek(today), -21)
	rows := make([][]string, 0, 4)
	for w := 0; w < 4; w++ {
		ws := model.AddDays(start, 7*w)
		row := []string{cli.FormatShortDate(ws)}
		for d := 0; d < 7; d++ {
			day := model.AddDays(ws, d)
			if day.After(today) {
				row = append(row, "")
				continue
			}
			row = append(row, cli.FormatCheck(h.CompletedOn(model.FormatDate(day))))
		}
		rows = append(rows, row)
	}
	fmt.Print(cli.RenderTable(cli.Table{Headers: headers, Rows: rows}))
	return nil
}
