package tracker

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theirongolddev/radar/internal/store"
)

// Storage keys.
const (
	HabitsKey = "routine-radar-habits"
	GoalsKey  = "routine-radar-goals"

	NotePrefix  = "notes-"
	MoodPrefix  = "mood-"
	TasksPrefix = "tasks-"
)

func noteKey(date string) string  { return NotePrefix + date }
func moodKey(date string) string  { return MoodPrefix + date }
func tasksKey(date string) string { return TasksPrefix + date }

// loadJSON decodes the blob stored under key. A missing or blank key yields
// the zero value. A blob that fails to decode is logged and also yields the
// zero value, so corrupted local state never blocks startup.
func loadJSON[T any](kv store.KV, key string, log *zap.Logger) (T, error) {
	var zero T
	raw, ok, err := kv.Load(key)
	if err != nil {
		return zero, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return zero, nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Warn("discarding unreadable stored value",
			zap.String("key", key),
			zap.Int("bytes", len(raw)),
			zap.Error(fmt.Errorf("%w: %v", ErrDeserialization, err)),
		)
		return zero, nil
	}
	return v, nil
}

func saveJSON(kv store.KV, key string, v any, log *zap.Logger) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Save(key, string(data)); err != nil {
		return err
	}
	log.Debug("persisted", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// newID returns a time-ordered unique identifier.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
