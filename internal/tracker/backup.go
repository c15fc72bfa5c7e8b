package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/radar/internal/logging"
	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/store"
)

// BackupVersion is written into every export.
const BackupVersion = 1

// Backup is a portable snapshot of all tracker state.
type Backup struct {
	Version    int                   `json:"version" yaml:"version"`
	ExportedAt time.Time             `json:"exportedAt" yaml:"exportedAt"`
	Habits     []model.Habit         `json:"habits" yaml:"habits"`
	Goals      []model.Goal          `json:"goals" yaml:"goals"`
	Days       []model.DayAnnotation `json:"days" yaml:"days"`
}

// Format selects the backup encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml", or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: unknown backup format %q", ErrValidation, s)
}

// ErrNotListable is returned by Export when the adapter cannot enumerate
// its keys.
var ErrNotListable = errors.New("store cannot enumerate keys")

// Export collects every habit, goal, and annotated day from kv.
func Export(kv store.KV, now time.Time, log *zap.Logger) (Backup, error) {
	log = logging.OrNop(log)
	b := Backup{Version: BackupVersion, ExportedAt: now}

	lister, ok := kv.(store.Lister)
	if !ok {
		return b, ErrNotListable
	}

	var err error
	if b.Habits, err = loadJSON[[]model.Habit](kv, HabitsKey, log); err != nil {
		return b, err
	}
	if b.Goals, err = loadJSON[[]model.Goal](kv, GoalsKey, log); err != nil {
		return b, err
	}

	dates := make(map[string]struct{})
	for _, prefix := range []string{NotePrefix, MoodPrefix, TasksPrefix} {
		keys, err := lister.Keys(prefix)
		if err != nil {
			return b, fmt.Errorf("listing %s keys: %w", prefix, err)
		}
		for _, k := range keys {
			if d := strings.TrimPrefix(k, prefix); model.ValidDate(d) {
				dates[d] = struct{}{}
			}
		}
	}

	sorted := make([]string, 0, len(dates))
	for d := range dates {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	days := NewDayStore(kv, log)
	for _, d := range sorted {
		t, _ := model.ParseDate(d, time.UTC)
		a, err := days.Annotation(t)
		if err != nil {
			return b, err
		}
		if !a.Empty() {
			b.Days = append(b.Days, a)
		}
	}

	log.Info("export collected",
		zap.Int("habits", len(b.Habits)),
		zap.Int("goals", len(b.Goals)),
		zap.Int("days", len(b.Days)),
	)
	return b, nil
}

// Import writes every entity in b back into kv using the standard key
// layout. Existing keys are overwritten; keys absent from b are untouched.
func Import(kv store.KV, b Backup, log *zap.Logger) error {
	log = logging.OrNop(log)

	habits := make([]model.Habit, len(b.Habits))
	for i, h := range b.Habits {
		if h.ID == "" || strings.TrimSpace(h.Name) == "" {
			return fmt.Errorf("%w: habit %d has no id or name", ErrValidation, i)
		}
		h.CompletedDates, _ = normalizeDates(h.CompletedDates)
		habits[i] = h
	}
	for i, g := range b.Goals {
		if g.ID == "" {
			return fmt.Errorf("%w: goal %d has no id", ErrValidation, i)
		}
		if err := validateGoal(g); err != nil {
			return fmt.Errorf("goal %q: %w", g.ID, err)
		}
	}
	for _, d := range b.Days {
		if !model.ValidDate(d.Date) {
			return fmt.Errorf("%w: day %q is not a YYYY-MM-DD date", ErrValidation, d.Date)
		}
		if d.Mood != "" && !d.Mood.Valid() {
			return fmt.Errorf("%w: unknown mood %q on %s", ErrValidation, d.Mood, d.Date)
		}
	}

	if err := saveJSON(kv, HabitsKey, habits, log); err != nil {
		return err
	}
	goals := b.Goals
	if goals == nil {
		goals = []model.Goal{}
	}
	if err := saveJSON(kv, GoalsKey, goals, log); err != nil {
		return err
	}

	for _, d := range b.Days {
		if d.Note != "" {
			if err := kv.Save(noteKey(d.Date), d.Note); err != nil {
				return err
			}
		}
		if d.Mood != "" {
			if err := kv.Save(moodKey(d.Date), string(d.Mood)); err != nil {
				return err
			}
		}
		if len(d.Tasks) > 0 {
			if err := saveJSON(kv, tasksKey(d.Date), d.Tasks, log); err != nil {
				return err
			}
		}
	}

	log.Info("import written",
		zap.Int("habits", len(b.Habits)),
		zap.Int("goals", len(b.Goals)),
		zap.Int("days", len(b.Days)),
	)
	return nil
}

// EncodeBackup writes b to w in the given format.
func EncodeBackup(w io.Writer, b Backup, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}
}

// DecodeBackup reads a backup from r in the given format.
func DecodeBackup(r io.Reader, f Format) (Backup, error) {
	var b Backup
	var err error
	switch f {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&b)
	default:
		err = json.NewDecoder(r).Decode(&b)
	}
	if err != nil {
		return Backup{}, fmt.Errorf("%w: %v", ErrDeserialization, err)
	}
	return b, nil
}
