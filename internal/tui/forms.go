package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/tui/components"
	"github.com/theirongolddev/radar/internal/tui/theme"
)

type formKind int

const (
	formNone formKind = iota
	formSetup
	formAddHabit
	formAddGoal
	formProgress
	formMood
	formNote
	formTask
	formDeleteHabit
	formDeleteGoal
	formDeleteTask
)

const maxFormWidth = 72

// formValues is the binding target for whichever form is open.
type formValues struct {
	Name        string
	Category    string
	Color       string
	Title       string
	Description string
	Target      string
	Unit        string
	Deadline    string
	Progress    string
	Mood        string
	Note        string
	Task        string
	Confirm     bool

	// item the form acts on
	targetID   string
	targetName string
}

var errRequired = errors.New("required")

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequired
	}
	return nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("enter a number")
	}
	return v, nil
}

func validateTarget(s string) error {
	v, err := parseNumber(s)
	if err != nil {
		return err
	}
	if v <= 0 {
		return errors.New("must be greater than 0")
	}
	return nil
}

func validateDeadline(s string) error {
	if !model.ValidDate(strings.TrimSpace(s)) {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func colorOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(model.Palette))
	for i, c := range model.Palette {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("●")
		opts[i] = huh.NewOption(swatch+" "+c, c)
	}
	return opts
}

// buildForm creates the huh form for kind, seeding a.vals from the current
// selection.
func (a App) buildForm(kind formKind) *huh.Form {
	v := a.vals
	var fields []huh.Field

	switch kind {
	case formAddHabit:
		v.Category = model.HabitCategories[0]
		v.Color = model.Palette[0]
		fields = []huh.Field{
			huh.NewInput().Title("Habit").Placeholder("Drink water").
				Value(&v.Name).Validate(requireText),
			huh.NewSelect[string]().Title("Category").
				Options(huh.NewOptions(model.HabitCategories...)...).Value(&v.Category),
			huh.NewSelect[string]().Title("Color").
				Options(colorOptions()...).Value(&v.Color),
		}

	case formAddGoal:
		v.Category = "Personal"
		v.Color = model.Palette[0]
		v.Deadline = model.FormatDate(a.today().AddDate(0, 1, 0))
		fields = []huh.Field{
			huh.NewInput().Title("Goal").Placeholder("Read more books").
				Value(&v.Title).Validate(requireText),
			huh.NewInput().Title("Description").Value(&v.Description),
			huh.NewInput().Title("Target").Placeholder("12").
				Value(&v.Target).Validate(validateTarget),
			huh.NewInput().Title("Unit").Placeholder("books").Value(&v.Unit),
			huh.NewInput().Title("Deadline").Placeholder("YYYY-MM-DD").
				Value(&v.Deadline).Validate(validateDeadline),
			huh.NewSelect[string]().Title("Category").
				Options(huh.NewOptions(model.GoalCategories...)...).Value(&v.Category),
			huh.NewSelect[string]().Title("Color").
				Options(colorOptions()...).Value(&v.Color),
		}

	case formProgress:
		g := a.goalList[a.goalCur]
		v.targetID, v.targetName = g.ID, g.Title
		v.Progress = cli.FormatValue(g.CurrentValue)
		fields = []huh.Field{
			huh.NewInput().
				Title(g.Title).
				Description(strings.TrimSpace(fmt.Sprintf("Current value, target %s %s", cli.FormatValue(g.TargetValue), g.Unit))).
				Value(&v.Progress).
				Validate(func(s string) error { _, err := parseNumber(s); return err }),
		}

	case formMood:
		v.Mood = string(a.annotation.Mood)
		if v.Mood == "" {
			v.Mood = string(model.MoodOkay)
		}
		opts := make([]huh.Option[string], len(model.Moods))
		for i, m := range model.Moods {
			opts[i] = huh.NewOption(m.Emoji+" "+m.Label, string(m.Mood))
		}
		fields = []huh.Field{
			huh.NewSelect[string]().Title("How was the day?").Options(opts...).Value(&v.Mood),
		}

	case formNote:
		v.Note = a.annotation.Note
		fields = []huh.Field{
			huh.NewText().Title("Note").Description("Markdown is rendered in the day card").
				Lines(8).Value(&v.Note),
		}

	case formTask:
		fields = []huh.Field{
			huh.NewInput().Title("Task").Value(&v.Task).Validate(requireText),
		}

	case formDeleteHabit:
		h := a.habitList[a.habitCur]
		v.targetID, v.targetName = h.ID, h.Name
		fields = []huh.Field{confirmDelete(&v.Confirm, h.Name, "Its completion history is deleted too.")}

	case formDeleteGoal:
		g := a.goalList[a.goalCur]
		v.targetID, v.targetName = g.ID, g.Title
		fields = []huh.Field{confirmDelete(&v.Confirm, g.Title, "")}

	case formDeleteTask:
		t := a.annotation.Tasks[a.taskCur]
		v.targetID, v.targetName = t.ID, t.Text
		fields = []huh.Field{confirmDelete(&v.Confirm, t.Text, "")}
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

func confirmDelete(confirm *bool, name, desc string) *huh.Confirm {
	c := huh.NewConfirm().
		Title(fmt.Sprintf("Delete %q?", name)).
		Affirmative("Delete").
		Negative("Cancel").
		Value(confirm)
	if desc != "" {
		c = c.Description(desc)
	}
	return c
}

func (a App) openForm(kind formKind) (tea.Model, tea.Cmd) {
	a.vals = &formValues{}
	a.formKind = kind
	a.form = a.buildForm(kind).WithWidth(a.formWidth())
	return a, a.form.Init()
}

func (a App) formWidth() int {
	if a.formKind == formSetup {
		return a.width
	}
	w := a.contentWidth()
	if w > maxFormWidth {
		w = maxFormWidth
	}
	return components.CardInnerWidth(w)
}

func (a *App) closeForm() {
	a.form = nil
	a.formKind = formNone
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		if a.formKind == formSetup {
			a.needSetup = false
		}
		a.closeForm()
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind := a.formKind
		a.closeForm()
		if err := a.submitForm(kind); err != nil {
			a.setError(err)
		}
		a.refresh()
		return a, nil
	case huh.StateAborted:
		if a.formKind == formSetup {
			a.needSetup = false
		}
		a.closeForm()
		return a, nil
	}

	return a, cmd
}

// submitForm applies the completed form to the stores.
func (a *App) submitForm(kind formKind) error {
	v := a.vals
	day := a.viewedDay()

	switch kind {
	case formSetup:
		a.needSetup = false
		if err := a.saveSetup(); err != nil {
			return err
		}
		a.setFlash("settings saved")

	case formAddHabit:
		h, err := a.habits.Add(v.Name, v.Category, v.Color)
		if err != nil {
			return err
		}
		a.habitCur = len(a.habitList)
		a.setFlash("added " + h.Name)

	case formAddGoal:
		target, err := parseNumber(v.Target)
		if err != nil {
			return err
		}
		g, err := a.goals.Add(model.GoalInput{
			Title:       v.Title,
			Description: v.Description,
			TargetValue: target,
			Unit:        v.Unit,
			Deadline:    strings.TrimSpace(v.Deadline),
			Color:       v.Color,
			Category:    v.Category,
		})
		if err != nil {
			return err
		}
		a.goalCur = len(a.goalList)
		a.setFlash("added " + g.Title)

	case formProgress:
		value, err := parseNumber(v.Progress)
		if err != nil {
			return err
		}
		if _, err := a.goals.UpdateProgress(v.targetID, value); err != nil {
			return err
		}

	case formMood:
		return a.days.SetMood(day, model.Mood(v.Mood))

	case formNote:
		return a.days.SetNote(day, v.Note)

	case formTask:
		if _, err := a.days.AddTask(day, v.Task); err != nil {
			return err
		}
		a.pane = paneTasks

	case formDeleteHabit:
		if v.Confirm {
			if err := a.habits.Remove(v.targetID); err != nil {
				return err
			}
			a.setFlash("deleted " + v.targetName)
		}

	case formDeleteGoal:
		if v.Confirm {
			if err := a.goals.Remove(v.targetID); err != nil {
				return err
			}
			a.setFlash("deleted " + v.targetName)
		}

	case formDeleteTask:
		if v.Confirm {
			return a.days.RemoveTask(day, v.targetID)
		}
	}
	return nil
}

func (a App) renderFormCard(cw int) string {
	t := theme.Active

	title := map[formKind]string{
		formAddHabit:    "New Habit",
		formAddGoal:     "New Goal",
		formProgress:    "Update Progress",
		formMood:        "Mood · " + cli.FormatShortDate(a.viewedDay()),
		formNote:        "Note · " + cli.FormatShortDate(a.viewedDay()),
		formTask:        "New Task · " + cli.FormatShortDate(a.viewedDay()),
		formDeleteHabit: "Delete Habit",
		formDeleteGoal:  "Delete Goal",
		formDeleteTask:  "Delete Task",
	}[a.formKind]

	w := cw
	if w > maxFormWidth {
		w = maxFormWidth
	}
	card := components.ContentCard(title, a.form.View(), w, true)
	return "\n" + lipgloss.PlaceHorizontal(cw, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}
