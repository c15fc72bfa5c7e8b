package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/tracker"
)

var (
	flagGoalTarget      float64
	flagGoalUnit        string
	flagGoalDeadline    string
	flagGoalCategory    string
	flagGoalColor       string
	flagGoalDescription string
	flagGoalAdd         float64
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a goal",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals with progress and status",
	RunE:    runGoalList,
}

var goalProgressCmd = &cobra.Command{
	Use:   "progress <goal> [value]",
	Short: "Set a goal's current value, or adjust it with --add",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runGoalProgress,
}

var goalEditCmd = &cobra.Command{
	Use:   "edit <goal>",
	Short: "Change a goal's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalEdit,
}

var goalRmCmd = &cobra.Command{
	Use:   "rm <goal>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalRm,
}

func init() {
	goalAddCmd.Flags().Float64VarP(&flagGoalTarget, "target", "t", 0, "Target value (required, > 0)")
	goalAddCmd.Flags().StringVarP(&flagGoalUnit, "unit", "u", "", "Unit, e.g. books or km")
	goalAddCmd.Flags().StringVarP(&flagGoalDeadline, "deadline", "d", "", "Deadline YYYY-MM-DD (required)")
	goalAddCmd.Flags().StringVarP(&flagGoalCategory, "category", "c", "Personal", "Category")
	goalAddCmd.Flags().StringVar(&flagGoalColor, "color", model.Palette[1], "Display color (hex)")
	goalAddCmd.Flags().StringVar(&flagGoalDescription, "description", "", "Longer description")
	_ = goalAddCmd.MarkFlagRequired("target")
	_ = goalAddCmd.MarkFlagRequired("deadline")

	goalProgressCmd.Flags().Float64Var(&flagGoalAdd, "add", 0, "Add this amount (negative to subtract) instead of setting")

	// edit reads the values through Flags() so defaults never leak into a patch
	goalEditCmd.Flags().String("title", "", "New title")
	goalEditCmd.Flags().Float64("target", 0, "New target value")
	goalEditCmd.Flags().String("unit", "", "New unit")
	goalEditCmd.Flags().String("deadline", "", "New deadline YYYY-MM-DD")
	goalEditCmd.Flags().String("category", "", "New category")
	goalEditCmd.Flags().String("color", "", "New display color (hex)")
	goalEditCmd.Flags().String("description", "", "New description")

	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalProgressCmd, goalEditCmd, goalRmCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalAdd(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	g, err := a.goals.Add(model.GoalInput{
		Title:       strings.Join(args, " "),
		Description: flagGoalDescription,
		TargetValue: flagGoalTarget,
		Unit:        flagGoalUnit,
		Deadline:    flagGoalDeadline,
		Color:       flagGoalColor,
		Category:    flagGoalCategory,
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Added goal %q: %s by %s [%s]\n", g.Title,
		cli.FormatQuantity(g.CurrentValue, g.TargetValue, g.Unit), g.Deadline, cli.ShortID(g.ID))
	return nil
}

func runGoalList(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	goals := a.goals.List()
	if len(goals) == 0 {
		fmt.Println("\n  No goals yet. Add one with `radar goal add <title> --target N --deadline YYYY-MM-DD`.")
		return nil
	}

	today := a.today()
	fmt.Println()
	fmt.Println(cli.RenderTitle("GOALS"))
	fmt.Println()

	var completed, overdue int
	rows := make([][]string, 0, len(goals)+2)
	for _, g := range goals {
		status := g.Status(today)
		switch status {
		case model.GoalCompleted:
			completed++
		case model.GoalOverdue:
			overdue++
		}
		rows = append(rows, []string{
			g.Title,
			g.Category,
			cli.FormatQuantity(g.CurrentValue, g.TargetValue, g.Unit),
			cli.RenderRatioBar(g.Progress(), 12),
			cli.RenderStatus(status.String()),
			cli.FormatDaysLeft(g.DaysLeft(today)),
			cli.ShortID(g.ID),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		fmt.Sprintf("%d goals", len(goals)), "", "", "",
		fmt.Sprintf("%d done, %d overdue", completed, overdue), "", "",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Goal", "Category", "Progress", "", "Status", "Deadline", "ID"},
		Rows:    rows,
	}))
	return nil
}

func runGoalProgress(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	g, err := a.findGoal(args[0])
	if err != nil {
		return err
	}

	var v float64
	switch {
	case len(args) == 2 && cmd.Flags().Changed("add"):
		return fmt.Errorf("pass either a value or --add, not both")
	case len(args) == 2:
		raw := strings.TrimSpace(args[1])
		if v, err = strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Errorf("%w: %q is not a number", tracker.ErrValidation, raw)
		}
	case cmd.Flags().Changed("add"):
		v = g.CurrentValue + flagGoalAdd
	default:
		return fmt.Errorf("pass a value or --add")
	}

	g, err = a.goals.UpdateProgress(g.ID, v)
	if err != nil {
		return err
	}
	fmt.Printf("  %s: %s  %s  %s\n", g.Title,
		cli.FormatQuantity(g.CurrentValue, g.TargetValue, g.Unit),
		cli.RenderRatioBar(g.Progress(), 20),
		cli.RenderStatus(g.Status(a.today()).String()))
	return nil
}

func runGoalEdit(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	g, err := a.findGoal(args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	patch := model.GoalPatch{
		Title:       str("title"),
		Unit:        str("unit"),
		Deadline:    str("deadline"),
		Category:    str("category"),
		Color:       str("color"),
		Description: str("description"),
	}
	if flags.Changed("target") {
		v, _ := flags.GetFloat64("target")
		patch.TargetValue = &v
	}
	if patch == (model.GoalPatch{}) {
		return fmt.Errorf("nothing to change: pass at least one field flag")
	}

	g, err = a.goals.Update(g.ID, patch)
	if err != nil {
		return err
	}
	fmt.Printf("  Updated goal %q: %s by %s\n", g.Title,
		cli.FormatQuantity(g.CurrentValue, g.TargetValue, g.Unit), g.Deadline)
	return nil
}

func runGoalRm(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	g, err := a.findGoal(args[0])
	if err != nil {
		return err
	}
	if err := a.goals.Remove(g.ID); err != nil {
		return err
	}
	fmt.Printf("  Removed goal %q\n", g.Title)
	return nil
}
