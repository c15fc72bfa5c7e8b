// Package tui provides the interactive Bubble Tea dashboard for radar.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/theirongolddev/radar/internal/clock"
	"github.com/theirongolddev/radar/internal/config"
	"github.com/theirongolddev/radar/internal/logging"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/pipeline"
	"github.com/theirongolddev/radar/internal/tracker"
	"github.com/theirongolddev/radar/internal/tui/components"
	"github.com/theirongolddev/radar/internal/tui/theme"
)

const (
	tabToday = iota
	tabGoals
	tabStats
)

// Today tab panes.
const (
	paneHabits = iota
	paneTasks
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
)

// Options wires the dashboard to its stores.
type Options struct {
	Habits *tracker.HabitStore
	Goals  *tracker.GoalStore
	Days   *tracker.DayStore
	Clock  clock.Clock
	Log    *zap.Logger
	Config config.Config

	// ConfigPath is where the first-run wizard saves its answers.
	ConfigPath string
	NeedSetup  bool
}

// App is the root Bubble Tea model.
type App struct {
	habits *tracker.HabitStore
	goals  *tracker.GoalStore
	days   *tracker.DayStore
	clock  clock.Clock
	log    *zap.Logger

	cfg        config.Config
	configPath string
	weeks      int
	window     int

	// Derived, rebuilt by refresh after every change
	habitList  []model.Habit
	goalList   []model.Goal
	annotation model.DayAnnotation
	summary    model.SummaryStats
	weekly     []model.WeeklyStats
	daily      []model.DailyStats
	categories []model.CategoryStats

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	dayOffset int // 0 is today, negative is the past
	pane      int
	habitCur  int
	taskCur   int
	goalCur   int

	flash      string
	flashIsErr bool

	// Modal huh form. vals is a pointer because App is copied on every
	// Update and the form keeps pointers into it.
	form      *huh.Form
	formKind  formKind
	vals      *formValues
	setupVals *SetupValues
	needSetup bool
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	c := opts.Clock
	if c == nil {
		c = clock.System{}
	}
	cfg := opts.Config
	a := App{
		habits:     opts.Habits,
		goals:      opts.Goals,
		days:       opts.Days,
		clock:      c,
		log:        logging.OrNop(opts.Log),
		cfg:        cfg,
		configPath: opts.ConfigPath,
		weeks:      cfg.General.Weeks,
		window:     cfg.General.Days,
		needSetup:  opts.NeedSetup,
		vals:       &formValues{},
	}
	if a.weeks <= 0 {
		a.weeks = pipeline.DefaultWeeks
	}
	if a.window <= 0 {
		a.window = pipeline.DefaultDays
	}
	if a.needSetup {
		vals := SetupValuesFrom(cfg)
		a.setupVals = &vals
		a.form = NewSetupForm(a.setupVals)
		a.formKind = formSetup
	}
	a.refresh()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

func (a App) today() time.Time {
	return clock.Today(a.clock)
}

func (a App) viewedDay() time.Time {
	return model.AddDays(a.today(), a.dayOffset)
}

// refresh rebuilds every derived view from the stores.
func (a *App) refresh() {
	today := a.today()
	a.habitList = a.habits.List()
	a.goalList = a.goals.List()

	ann, err := a.days.Annotation(a.viewedDay())
	if err != nil {
		a.setError(err)
	}
	a.annotation = ann

	a.summary = pipeline.Summarize(a.habitList, today, a.window)
	a.weekly = pipeline.AggregateWeeks(a.habitList, today, a.weeks)
	a.daily = pipeline.AggregateDays(a.habitList, today, a.window)
	a.categories = pipeline.AggregateCategories(a.habitList)

	a.habitCur = clampCursor(a.habitCur, len(a.habitList))
	a.taskCur = clampCursor(a.taskCur, len(a.annotation.Tasks))
	a.goalCur = clampCursor(a.goalCur, len(a.goalList))
}

func clampCursor(cur, n int) int {
	if cur >= n {
		cur = n - 1
	}
	if cur < 0 {
		cur = 0
	}
	return cur
}

func (a *App) setFlash(msg string) {
	a.flash = msg
	a.flashIsErr = false
}

func (a *App) setError(err error) {
	a.flash = err.Error()
	a.flashIsErr = true
	if isValidation(err) {
		a.log.Debug("rejected input", zap.Error(err))
		return
	}
	a.log.Warn("dashboard action failed", zap.Error(err))
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth()).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.form != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.form != nil {
			return a.updateForm(msg)
		}

		a.flash = ""

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.handleKey(key)
	}

	// Cursor blinks and other internal form messages
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return a, tea.Quit
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "j", "down":
		a.moveCursor(1)
		return a, nil
	case "k", "up":
		a.moveCursor(-1)
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch a.activeTab {
	case tabToday:
		return a.handleTodayKey(key)
	case tabGoals:
		return a.handleGoalsKey(key)
	}
	return a, nil
}

func (a App) handleTodayKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "tab":
		if a.pane == paneHabits {
			a.pane = paneTasks
		} else {
			a.pane = paneHabits
		}
	case "h", "[":
		a.dayOffset--
		a.refresh()
	case "l", "]":
		if a.dayOffset < 0 {
			a.dayOffset++
			a.refresh()
		}
	case "T":
		a.dayOffset = 0
		a.refresh()
	case " ", "space", "enter":
		if a.pane == paneTasks {
			a.toggleTask()
		} else {
			a.toggleHabit()
		}
	case "x":
		a.toggleTask()
	case "a":
		if a.pane == paneTasks {
			return a.openForm(formTask)
		}
		return a.openForm(formAddHabit)
	case "t":
		return a.openForm(formTask)
	case "m":
		return a.openForm(formMood)
	case "n":
		return a.openForm(formNote)
	case "D":
		if a.pane == paneTasks && len(a.annotation.Tasks) > 0 {
			return a.openForm(formDeleteTask)
		}
		if a.pane == paneHabits && len(a.habitList) > 0 {
			return a.openForm(formDeleteHabit)
		}
	}
	return a, nil
}

func (a App) handleGoalsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "a":
		return a.openForm(formAddGoal)
	case "+", "=":
		a.adjustGoal(1)
	case "-":
		a.adjustGoal(-1)
	case "p", "enter":
		if len(a.goalList) > 0 {
			return a.openForm(formProgress)
		}
	case "D":
		if len(a.goalList) > 0 {
			return a.openForm(formDeleteGoal)
		}
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabToday:
		if a.pane == paneTasks {
			a.taskCur = clampCursor(a.taskCur+delta, len(a.annotation.Tasks))
		} else {
			a.habitCur = clampCursor(a.habitCur+delta, len(a.habitList))
		}
	case tabGoals:
		a.goalCur = clampCursor(a.goalCur+delta, len(a.goalList))
	}
}

func (a *App) toggleHabit() {
	if len(a.habitList) == 0 {
		return
	}
	h := a.habitList[a.habitCur]
	done, err := a.habits.ToggleCompletion(h.ID, a.viewedDay())
	if err != nil {
		a.setError(err)
		return
	}
	if done {
		a.setFlash("✓ " + h.Name)
	} else {
		a.setFlash("unmarked " + h.Name)
	}
	a.refresh()
}

func (a *App) toggleTask() {
	if len(a.annotation.Tasks) == 0 {
		return
	}
	task := a.annotation.Tasks[a.taskCur]
	if _, err := a.days.ToggleTask(a.viewedDay(), task.ID); err != nil {
		a.setError(err)
		return
	}
	a.refresh()
}

func (a *App) adjustGoal(delta float64) {
	if len(a.goalList) == 0 {
		return
	}
	g := a.goalList[a.goalCur]
	updated, err := a.goals.UpdateProgress(g.ID, g.CurrentValue+delta)
	if err != nil {
		a.setError(err)
		return
	}
	if updated.Status(a.today()) == model.GoalCompleted && g.Status(a.today()) != model.GoalCompleted {
		a.setFlash("🎉 " + g.Title + " completed")
	}
	a.refresh()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.formKind == formSetup && a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  radar needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1 2 3", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move in list"},
			{"tab", "Switch habits / tasks"},
			{"h l", "Previous / Next day"},
			{"T", "Back to today"},
		}},
		{"Today", []struct{ key, desc string }{
			{"space", "Toggle habit or task"},
			{"a", "Add habit (or task)"},
			{"t", "Add task"},
			{"m n", "Set mood / Edit note"},
			{"D", "Delete selected"},
		}},
		{"Goals", []struct{ key, desc string }{
			{"a", "Add goal"},
			{"+ -", "Adjust progress by 1"},
			{"p", "Set progress"},
			{"D", "Delete goal"},
		}},
		{"General", []struct{ key, desc string }{
			{"esc", "Cancel form"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	date := a.viewedDay().Format("Mon Jan 2, 2006")
	if a.dayOffset == 0 {
		date = "Today · " + date
	}
	statusBar := components.RenderStatusBar(w, a.statusHints(), date, a.flash, a.flashIsErr)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.form != nil:
		content = a.renderFormCard(cw)
	case a.activeTab == tabToday:
		content = a.renderTodayTab(cw)
	case a.activeTab == tabGoals:
		content = a.renderGoalsTab(cw)
	case a.activeTab == tabStats:
		content = a.renderStatsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHints() string {
	if a.form != nil {
		return "enter next · esc cancel"
	}
	switch a.activeTab {
	case tabToday:
		return "space toggle · a add · m mood · n note · h/l day · ? help"
	case tabGoals:
		return "+/- adjust · p progress · a add · D delete · ? help"
	default:
		return "1-3 tabs · ? help · q quit"
	}
}

// ─── Helpers ────────────────────────────────────────────────────

// weekLabels builds compact X-axis labels for a chronological week series.
// The first label and month boundaries get "Jan 2"; the rest just the day.
func weekLabels(weeks []model.WeeklyStats) []string {
	labels := make([]string, len(weeks))
	prevMonth := time.Month(0)
	for i, w := range weeks {
		m := w.WeekStart.Month()
		if i == 0 || m != prevMonth {
			labels[i] = w.WeekStart.Format("Jan 2")
		} else {
			labels[i] = strconv.Itoa(w.WeekStart.Day())
		}
		prevMonth = m
	}
	return labels
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// isValidation reports whether err came from rejected user input rather
// than a storage failure.
func isValidation(err error) bool {
	return errors.Is(err, tracker.ErrValidation)
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
