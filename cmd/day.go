package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/tracker"
)

var (
	flagDayDate  string
	flagDayClear bool
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Notes, mood, and tasks for a calendar day",
}

var dayShowCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show a day's habits, note, mood, and tasks",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDayShow,
}

var dayNoteCmd = &cobra.Command{
	Use:   "note [text]",
	Short: "Set the day's note (markdown); without text, print it",
	RunE:  runDayNote,
}

var dayMoodCmd = &cobra.Command{
	Use:       "mood <great|good|okay|low|tired>",
	Short:     "Set the day's mood",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"great", "good", "okay", "low", "tired"},
	RunE:      runDayMood,
}

var dayTaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the day's task checklist",
}

var dayTaskAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDayTaskAdd,
}

var dayTaskDoneCmd = &cobra.Command{
	Use:   "done <task>",
	Short: "Toggle a task's completion",
	Args:  cobra.ExactArgs(1),
	RunE:  runDayTaskDone,
}

var dayTaskRmCmd = &cobra.Command{
	Use:   "rm <task>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDayTaskRm,
}

func init() {
	dayCmd.PersistentFlags().StringVar(&flagDayDate, "date", "", "Day to act on, YYYY-MM-DD (default today)")
	dayNoteCmd.Flags().BoolVar(&flagDayClear, "clear", false, "Clear the note")

	dayTaskCmd.AddCommand(dayTaskAddCmd, dayTaskDoneCmd, dayTaskRmCmd)
	dayCmd.AddCommand(dayShowCmd, dayNoteCmd, dayMoodCmd, dayTaskCmd)
	rootCmd.AddCommand(dayCmd)
}

// targetDay resolves the positional date for show, else --date.
func targetDay(a *app, args []string) (time.Time, error) {
	if len(args) > 0 {
		return a.dayArg(args, 0)
	}
	return a.dayArg([]string{flagDayDate}, 0)
}

func runDayShow(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	day, err := targetDay(a, args)
	if err != nil {
		return err
	}
	ann, err := a.days.Annotation(day)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(day.Format("Monday, January 2, 2006")))
	fmt.Println()

	if habits := a.habits.List(); len(habits) > 0 {
		rows := make([][]string, 0, len(habits))
		for _, h := range habits {
			rows = append(rows, []string{h.Name, cli.FormatCheck(h.CompletedOn(ann.Date))})
		}
		fmt.Print(cli.RenderTable(cli.Table{Title: "Habits", Headers: []string{"Habit", "Done"}, Rows: rows}))
		fmt.Println()
	}

	if ann.Mood != "" {
		fmt.Printf("  Mood: %s\n\n", ann.Mood.Label())
	}

	if ann.Note != "" {
		fmt.Println("  Note")
		fmt.Print(cli.RenderMarkdown(ann.Note, 76))
	}

	if len(ann.Tasks) > 0 {
		done := 0
		rows := make([][]string, 0, len(ann.Tasks))
		for _, t := range ann.Tasks {
			if t.Completed {
				done++
			}
			rows = append(rows, []string{cli.FormatCheck(t.Completed) + " " + t.Text, cli.ShortID(t.ID)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Tasks  %d/%d", done, len(ann.Tasks)),
			Headers: []string{"Task", "ID"},
			Rows:    rows,
		}))
	}

	if ann.Empty() {
		fmt.Println(cli.RenderMuted("  Nothing recorded for this day."))
	}
	return nil
}

func runDayNote(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	day, err := targetDay(a, nil)
	if err != nil {
		return err
	}

	if len(args) == 0 && !flagDayClear {
		note, err := a.days.Note(day)
		if err != nil {
			return err
		}
		if note == "" {
			fmt.Println(cli.RenderMuted("  No note for " + model.FormatDate(day)))
			return nil
		}
		fmt.Print(cli.RenderMarkdown(note, 76))
		return nil
	}

	text := strings.Join(args, " ")
	if flagDayClear {
		text = ""
	}
	if err := a.days.SetNote(day, text); err != nil {
		return err
	}
	fmt.Printf("  Note saved for %s\n", model.FormatDate(day))
	return nil
}

func runDayMood(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	day, err := targetDay(a, nil)
	if err != nil {
		return err
	}
	m := model.Mood(strings.ToLower(args[0]))
	if err := a.days.SetMood(day, m); err != nil {
		return err
	}
	fmt.Printf("  Mood for %s: %s\n", model.FormatDate(day), m.Label())
	return nil
}

func runDayTaskAdd(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	day, err := targetDay(a, nil)
	if err != nil {
		return err
	}
	t, err := a.days.AddTask(day, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Printf("  Added task %q for %s [%s]\n", t.Text, model.FormatDate(day), cli.ShortID(t.ID))
	return nil
}

func runDayTaskDone(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	day, err := targetDay(a, nil)
	if err != nil {
		return err
	}
	id, err := findTask(a, day, args[0])
	if err != nil {
		return err
	}
	t, err := a.days.ToggleTask(day, id)
	if err != nil {
		return err
	}
	fmt.Printf("  %s %s\n", cli.FormatCheck(t.Completed), t.Text)
	return nil
}

func runDayTaskRm(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	day, err := targetDay(a, nil)
	if err != nil {
		return err
	}
	id, err := findTask(a, day, args[0])
	if err != nil {
		return err
	}
	if err := a.days.RemoveTask(day, id); err != nil {
		return err
	}
	fmt.Println("  Task removed")
	return nil
}

// findTask resolves a task by id, short id, or exact text within one day.
func findTask(a *app, day time.Time, ref string) (string, error) {
	tasks, err := a.days.Tasks(day)
	if err != nil {
		return "", err
	}
	var match []model.Task
	for _, t := range tasks {
		if t.ID == ref || t.Text == ref {
			return t.ID, nil
		}
		if matchesID(t.ID, ref) {
			match = append(match, t)
		}
	}
	if len(match) == 1 {
		return match[0].ID, nil
	}
	if len(match) > 1 {
		return "", fmt.Errorf("task %q is ambiguous (%d matches)", ref, len(match))
	}
	return "", fmt.Errorf("task %q on %s: %w", ref, model.FormatDate(day), tracker.ErrNotFound)
}
