// Package cmd implements the radar CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/radar/internal/cli"
	"github.com/theirongolddev/radar/internal/clock"
	"github.com/theirongolddev/radar/internal/config"
	"github.com/theirongolddev/radar/internal/logging"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/store"
	"github.com/theirongolddev/radar/internal/tracker"
)

var (
	flagDB      string
	flagToday   string
	flagConfig  string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "radar",
	Short:         "Habit and goal tracker",
	Long:          "Track daily habits, numeric goals, and per-day notes, moods, and tasks.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStats,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "Treat this YYYY-MM-DD date as today")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
}

// app bundles everything a command needs. Commands get one from openApp
// and must Close it.
type app struct {
	cfg    config.Config
	log    *zap.Logger
	db     *store.SQLite
	clock  clock.Clock
	habits *tracker.HabitStore
	goals  *tracker.GoalStore
	days   *tracker.DayStore
}

// loadConfig reads the config from --config or the default path.
func loadConfig() (config.Config, error) {
	if flagConfig != "" {
		return config.LoadFrom(flagConfig)
	}
	return config.Load()
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.ConfigPath()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level := cfg.Logging.Level
	switch {
	case flagVerbose:
		level = "debug"
	case flagQuiet:
		level = "error"
	}
	return logging.New(level)
}

func newClock() (clock.Clock, error) {
	if flagToday == "" {
		return clock.System{}, nil
	}
	if !model.ValidDate(flagToday) {
		return nil, fmt.Errorf("--today %q: %w", flagToday, tracker.ErrValidation)
	}
	t, err := model.ParseDate(flagToday, time.Local)
	if err != nil {
		return nil, err
	}
	return clock.Fixed(t), nil
}

// openApp is the shared setup path used by all data commands.
func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	clk, err := newClock()
	if err != nil {
		return nil, err
	}

	path := flagDB
	if path == "" {
		path = cfg.ResolveDBPath()
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	log.Debug("database opened", zap.String("path", path))

	habits, err := tracker.NewHabitStore(db, clk, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	goals, err := tracker.NewGoalStore(db, clk, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &app{
		cfg:    cfg,
		log:    log,
		db:     db,
		clock:  clk,
		habits: habits,
		goals:  goals,
		days:   tracker.NewDayStore(db, log),
	}, nil
}

// Close releases the database and flushes the logger.
func (a *app) Close() {
	_ = a.log.Sync()
	_ = a.db.Close()
}

func (a *app) today() time.Time {
	return clock.Today(a.clock)
}

// dayArg resolves an optional YYYY-MM-DD argument, defaulting to today.
func (a *app) dayArg(args []string, i int) (time.Time, error) {
	if i >= len(args) || args[i] == "" || args[i] == "today" {
		return a.today(), nil
	}
	if args[i] == "yesterday" {
		return model.AddDays(a.today(), -1), nil
	}
	if !model.ValidDate(args[i]) {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", tracker.ErrValidation, args[i])
	}
	return model.ParseDate(args[i], a.today().Location())
}

// findHabit resolves a habit by id, short id, or exact name.
func (a *app) findHabit(ref string) (model.Habit, error) {
	var match []model.Habit
	for _, h := range a.habits.List() {
		if h.ID == ref || h.Name == ref {
			return h, nil
		}
		if matchesID(h.ID, ref) {
			match = append(match, h)
		}
	}
	switch len(match) {
	case 1:
		return match[0], nil
	case 0:
		return model.Habit{}, fmt.Errorf("habit %q: %w", ref, tracker.ErrNotFound)
	default:
		return model.Habit{}, fmt.Errorf("habit %q is ambiguous (%d matches)", ref, len(match))
	}
}

// findGoal resolves a goal by id, short id, or exact title.
func (a *app) findGoal(ref string) (model.Goal, error) {
	var match []model.Goal
	for _, g := range a.goals.List() {
		if g.ID == ref || g.Title == ref {
			return g, nil
		}
		if matchesID(g.ID, ref) {
			match = append(match, g)
		}
	}
	switch len(match) {
	case 1:
		return match[0], nil
	case 0:
		return model.Goal{}, fmt.Errorf("goal %q: %w", ref, tracker.ErrNotFound)
	default:
		return model.Goal{}, fmt.Errorf("goal %q is ambiguous (%d matches)", ref, len(match))
	}
}

// matchesID reports whether ref is a usable abbreviation of id: the short
// form printed in tables (a suffix) or a leading prefix.
func matchesID(id, ref string) bool {
	if len(ref) < 4 {
		return false
	}
	return strings.HasSuffix(id, ref) || strings.HasPrefix(id, ref)
}

func formatNumber(n int64) string {
	return cli.FormatNumber(n)
}
