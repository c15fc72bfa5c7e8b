package tracker

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/store"
)

func seed(t *testing.T, kv store.KV) {
	t.Helper()
	habits := newHabits(t, kv)
	h, err := habits.Add("Drink Water", "Health & Fitness", "#3B82F6")
	require.NoError(t, err)
	_, err = habits.ToggleCompletion(h.ID, day(t, "2024-01-01"))
	require.NoError(t, err)

	goals := newGoals(t, kv)
	_, err = goals.Add(booksGoal())
	require.NoError(t, err)

	days := NewDayStore(kv, nil)
	require.NoError(t, days.SetNote(day(t, "2024-01-01"), "hello"))
	require.NoError(t, days.SetMood(day(t, "2024-01-02"), model.MoodGood))
	_, err = days.AddTask(day(t, "2024-01-03"), "call mom")
	require.NoError(t, err)
}

func TestExportImport_RoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			src := store.NewMemory()
			seed(t, src)

			b, err := Export(src, fixedNow, nil)
			require.NoError(t, err)
			require.Len(t, b.Habits, 1)
			require.Len(t, b.Goals, 1)
			require.Len(t, b.Days, 3)
			assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"},
				[]string{b.Days[0].Date, b.Days[1].Date, b.Days[2].Date})

			var buf bytes.Buffer
			require.NoError(t, EncodeBackup(&buf, b, f))
			decoded, err := DecodeBackup(&buf, f)
			require.NoError(t, err)

			dst := store.NewMemory()
			require.NoError(t, Import(dst, decoded, nil))

			srcKeys, _ := src.Keys("")
			dstKeys, _ := dst.Keys("")
			assert.Equal(t, srcKeys, dstKeys)

			again, err := Export(dst, fixedNow, nil)
			require.NoError(t, err)
			if diff := cmp.Diff(b, again); diff != "" {
				t.Fatalf("re-export mismatch (-first +second):\n%s", diff)
			}
		})
	}
}

func TestImport_RejectsInvalidGoal(t *testing.T) {
	dst := store.NewMemory()
	b := Backup{Goals: []model.Goal{{ID: "g", Title: "x", TargetValue: 0, Deadline: "2024-01-01"}}}

	err := Import(dst, b, nil)
	require.ErrorIs(t, err, ErrValidation)
	keys, _ := dst.Keys("")
	assert.Empty(t, keys)
}

func TestImport_LeavesCallerBackupUntouched(t *testing.T) {
	dst := store.NewMemory()
	dates := []string{"2024-01-02", "bad", "2024-01-01"}
	b := Backup{Habits: []model.Habit{{ID: "h", Name: "Read", CompletedDates: dates}}}

	require.NoError(t, Import(dst, b, nil))
	assert.Equal(t, []string{"2024-01-02", "bad", "2024-01-01"}, b.Habits[0].CompletedDates)

	got, err := Export(dst, fixedNow, nil)
	require.NoError(t, err)
	require.Len(t, got.Habits, 1)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, got.Habits[0].CompletedDates)
}

func TestDecodeBackup_Garbage(t *testing.T) {
	_, err := DecodeBackup(bytes.NewBufferString("{{{"), FormatJSON)
	require.ErrorIs(t, err, ErrDeserialization)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	require.ErrorIs(t, err, ErrValidation)
}
