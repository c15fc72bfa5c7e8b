package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/radar/internal/config"
	"github.com/theirongolddev/radar/internal/tui/theme"
)

// SetupValues holds the form-bound values for the first-run wizard.
type SetupValues struct {
	DBPath   string
	Weeks    int
	Days     int
	Theme    string
	LogLevel string
}

// SetupValuesFrom seeds the wizard from an existing config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		DBPath:   cfg.General.DBPath,
		Weeks:    cfg.General.Weeks,
		Days:     cfg.General.Days,
		Theme:    cfg.Appearance.Theme,
		LogLevel: cfg.Logging.Level,
	}
}

// Apply copies the wizard answers onto cfg.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	cfg.General.DBPath = strings.TrimSpace(v.DBPath)
	if v.Weeks > 0 {
		cfg.General.Weeks = v.Weeks
	}
	if v.Days > 0 {
		cfg.General.Days = v.Days
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
	if v.LogLevel != "" {
		cfg.Logging.Level = v.LogLevel
	}
	return cfg
}

// NewSetupForm builds the huh wizard. vals must outlive the form since huh
// writes answers through the pointers.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to radar").
				Description("Track habits, goals, and how each day went.\nA few settings first; defaults are fine."),
			huh.NewInput().
				Title("Database path").
				Description("Leave blank for "+config.DefaultDBPath()).
				Value(&vals.DBPath),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Weekly chart").
				Options(
					huh.NewOption("4 weeks", 4),
					huh.NewOption("8 weeks", 8),
					huh.NewOption("12 weeks", 12),
				).
				Value(&vals.Weeks),
			huh.NewSelect[int]().
				Title("Daily window").
				Options(
					huh.NewOption("7 days", 7),
					huh.NewOption("30 days", 30),
					huh.NewOption("90 days", 90),
				).
				Value(&vals.Days),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&vals.LogLevel),
		),
	).WithShowHelp(false)
}

// saveSetup persists the wizard answers and applies the theme right away.
func (a *App) saveSetup() error {
	cfg := a.setupVals.Apply(a.cfg)
	theme.SetActive(cfg.Appearance.Theme)
	a.cfg = cfg
	a.weeks = cfg.General.Weeks
	a.window = cfg.General.Days
	if err := config.SaveTo(a.configPath, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
